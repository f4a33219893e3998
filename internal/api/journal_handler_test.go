package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/wellbeing-api/internal/domain"
	"github.com/phrazzld/wellbeing-api/internal/mocks"
)

func seedJournal(t *testing.T, journalStore *mocks.MockJournalStore, ownerID uuid.UUID) *domain.Journal {
	t.Helper()

	journal, err := domain.NewJournal(ownerID)
	require.NoError(t, err)
	journalStore.Journals[ownerID] = journal
	return journal
}

func seedPage(
	t *testing.T,
	journalStore *mocks.MockJournalStore,
	journalID uuid.UUID,
	date time.Time,
	body string,
) *domain.JournalPage {
	t.Helper()

	page, err := domain.NewJournalPage(journalID, date, body)
	require.NoError(t, err)
	journalStore.Pages[page.ID] = page
	return page
}

func TestGetJournal_LazyCreation(t *testing.T) {
	t.Parallel()

	journalStore := mocks.NewMockJournalStore()
	handler := NewJournalHandler(journalStore, nil)
	userID := uuid.New()

	getJournal := func() *httptest.ResponseRecorder {
		req := asUser(newJSONRequest(t, "GET", "/api/user/journal", nil), userID)
		recorder := httptest.NewRecorder()
		handler.GetJournal(recorder, req)
		return recorder
	}

	// First access creates the journal
	recorder := getJournal()
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created JournalResponse
	decodeBody(t, recorder, &created)
	assert.Equal(t, userID, created.OwnerID)
	assert.NotNil(t, created.Pages)
	assert.Empty(t, created.Pages)

	// Subsequent accesses return the same journal with 200
	recorder = getJournal()
	require.Equal(t, http.StatusOK, recorder.Code)

	var fetched JournalResponse
	decodeBody(t, recorder, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
}

func TestCreatePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid page",
			payload: map[string]interface{}{
				"date": "2025-02-01",
				"body": "Wrote some Go today.",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "missing body",
			payload: map[string]interface{}{
				"date": "2025-02-01",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "malformed date",
			payload: map[string]interface{}{
				"date": "02/01/2025",
				"body": "Wrote some Go today.",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			journalStore := mocks.NewMockJournalStore()
			handler := NewJournalHandler(journalStore, nil)
			userID := uuid.New()

			req := asUser(newJSONRequest(t, "POST", "/api/user/journal/pages", tt.payload), userID)
			recorder := httptest.NewRecorder()
			handler.CreatePage(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusCreated {
				// The journal was created on the fly and the page hangs off it
				journal := journalStore.Journals[userID]
				require.NotNil(t, journal)

				var resp domain.JournalPage
				decodeBody(t, recorder, &resp)
				assert.Equal(t, journal.ID, resp.JournalID)
			}
		})
	}
}

func TestGetPage_Ownership(t *testing.T) {
	t.Parallel()

	journalStore := mocks.NewMockJournalStore()
	handler := NewJournalHandler(journalStore, nil)

	ownerID := uuid.New()
	journal := seedJournal(t, journalStore, ownerID)
	page := seedPage(t, journalStore, journal.ID, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), "entry")

	// Another user with their own journal must not read this page
	strangerID := uuid.New()
	seedJournal(t, journalStore, strangerID)

	tests := []struct {
		name       string
		asUserID   uuid.UUID
		pageID     string
		wantStatus int
	}{
		{"owner reads own page", ownerID, page.ID.String(), http.StatusOK},
		{"other user is forbidden", strangerID, page.ID.String(), http.StatusForbidden},
		{"unknown page", ownerID, uuid.New().String(), http.StatusNotFound},
		{"malformed ID", ownerID, "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := asUser(newJSONRequest(t, "GET", "/api/user/journal/pages/"+tt.pageID, nil), tt.asUserID)
			req = withURLParam(req, "id", tt.pageID)

			recorder := httptest.NewRecorder()
			handler.GetPage(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestUpdatePage(t *testing.T) {
	t.Parallel()

	journalStore := mocks.NewMockJournalStore()
	handler := NewJournalHandler(journalStore, nil)

	ownerID := uuid.New()
	journal := seedJournal(t, journalStore, ownerID)
	date := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	page := seedPage(t, journalStore, journal.ID, date, "first draft")

	payload := map[string]interface{}{"body": "second draft"}
	req := asUser(newJSONRequest(t, "PUT", "/api/user/journal/pages/"+page.ID.String(), payload), ownerID)
	req = withURLParam(req, "id", page.ID.String())

	recorder := httptest.NewRecorder()
	handler.UpdatePage(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp domain.JournalPage
	decodeBody(t, recorder, &resp)
	assert.Equal(t, "second draft", resp.Body)
	// The page date is fixed at creation
	assert.True(t, resp.Date.Equal(date))
}

func TestUpdatePage_EmptyBody(t *testing.T) {
	t.Parallel()

	journalStore := mocks.NewMockJournalStore()
	handler := NewJournalHandler(journalStore, nil)

	ownerID := uuid.New()
	journal := seedJournal(t, journalStore, ownerID)
	page := seedPage(t, journalStore, journal.ID, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), "keep me")

	payload := map[string]interface{}{"body": ""}
	req := asUser(newJSONRequest(t, "PUT", "/api/user/journal/pages/"+page.ID.String(), payload), ownerID)
	req = withURLParam(req, "id", page.ID.String())

	recorder := httptest.NewRecorder()
	handler.UpdatePage(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "keep me", journalStore.Pages[page.ID].Body)
}

func TestDeletePage(t *testing.T) {
	t.Parallel()

	journalStore := mocks.NewMockJournalStore()
	handler := NewJournalHandler(journalStore, nil)

	ownerID := uuid.New()
	journal := seedJournal(t, journalStore, ownerID)
	page := seedPage(t, journalStore, journal.ID, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), "entry")

	deletePage := func(userID uuid.UUID) *httptest.ResponseRecorder {
		req := asUser(newJSONRequest(t, "DELETE", "/api/user/journal/pages/"+page.ID.String(), nil), userID)
		req = withURLParam(req, "id", page.ID.String())
		recorder := httptest.NewRecorder()
		handler.DeletePage(recorder, req)
		return recorder
	}

	strangerID := uuid.New()
	seedJournal(t, journalStore, strangerID)
	assert.Equal(t, http.StatusForbidden, deletePage(strangerID).Code)

	assert.Equal(t, http.StatusOK, deletePage(ownerID).Code)
	assert.Equal(t, http.StatusNotFound, deletePage(ownerID).Code)
}

func TestSearchPages(t *testing.T) {
	t.Parallel()

	journalStore := mocks.NewMockJournalStore()
	handler := NewJournalHandler(journalStore, nil)

	ownerID := uuid.New()
	journal := seedJournal(t, journalStore, ownerID)
	base := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	seedPage(t, journalStore, journal.ID, base, "Went hiking in the hills")
	seedPage(t, journalStore, journal.ID, base.AddDate(0, 0, 1), "Stayed home and read")
	seedPage(t, journalStore, journal.ID, base.AddDate(0, 0, 2), "More HIKING, longer trail")

	search := func(query string) PageListResponse {
		req := asUser(newJSONRequest(t, "GET", "/api/user/journal/pages/search?q="+query, nil), ownerID)
		recorder := httptest.NewRecorder()
		handler.SearchPages(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp PageListResponse
		decodeBody(t, recorder, &resp)
		return resp
	}

	// Case-insensitive substring match, newest first
	resp := search("hiking")
	require.Len(t, resp.Pages, 2)
	assert.True(t, resp.Pages[0].Date.After(resp.Pages[1].Date))

	// No matches yields an empty list, not null
	resp = search("swimming")
	assert.NotNil(t, resp.Pages)
	assert.Empty(t, resp.Pages)

	// An empty query matches every page
	resp = search("")
	assert.Len(t, resp.Pages, 3)
}
