package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/wellbeing-api/internal/mocks"
)

func newTestUserHandler(
	userStore *mocks.MockUserStore,
	checkInStore *mocks.MockCheckInStore,
) *UserHandler {
	return NewUserHandler(
		userStore,
		checkInStore,
		&mocks.MockPasswordVerifier{UsePrefix: true},
		nil,
	)
}

func TestGetCurrentUser(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	checkInStore := mocks.NewMockCheckInStore()
	user := mustNewUser(t, "test@example.com", "hashed:password1234")
	userStore.Users[user.Email] = user

	checkIn := mustNewCheckIn(t, user.ID, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), 4)
	checkInStore.CheckIns[checkIn.ID] = checkIn

	// Another user's check-in must not leak into the response
	other := mustNewCheckIn(t, uuid.New(), time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC), 2)
	checkInStore.CheckIns[other.ID] = other

	handler := newTestUserHandler(userStore, checkInStore)

	req := asUser(newJSONRequest(t, "GET", "/api/user", nil), user.ID)
	recorder := httptest.NewRecorder()
	handler.GetCurrentUser(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp UserResponse
	decodeBody(t, recorder, &resp)
	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, "test@example.com", resp.Email)
	require.Len(t, resp.CheckIns, 1)
	assert.Equal(t, checkIn.ID, resp.CheckIns[0].ID)
}

func TestGetCurrentUser_Unauthenticated(t *testing.T) {
	t.Parallel()

	handler := newTestUserHandler(mocks.NewMockUserStore(), mocks.NewMockCheckInStore())

	recorder := httptest.NewRecorder()
	handler.GetCurrentUser(recorder, newJSONRequest(t, "GET", "/api/user", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestUpdateUser(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	user := mustNewUser(t, "old@example.com", "hashed:password1234")
	userStore.Users[user.Email] = user

	handler := newTestUserHandler(userStore, mocks.NewMockCheckInStore())

	payload := map[string]interface{}{
		"name":  "Renamed User",
		"email": "new@example.com",
	}
	req := asUser(newJSONRequest(t, "PUT", "/api/user", payload), user.ID)
	recorder := httptest.NewRecorder()
	handler.UpdateUser(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp UserResponse
	decodeBody(t, recorder, &resp)
	assert.Equal(t, "Renamed User", resp.Name)
	assert.Equal(t, "new@example.com", resp.Email)

	_, exists := userStore.Users["new@example.com"]
	assert.True(t, exists)
}

func TestUpdateUser_InvalidPayload(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	user := mustNewUser(t, "test@example.com", "hashed:password1234")
	userStore.Users[user.Email] = user

	handler := newTestUserHandler(userStore, mocks.NewMockCheckInStore())

	payload := map[string]interface{}{
		"name":  "Renamed User",
		"email": "not-an-email",
	}
	req := asUser(newJSONRequest(t, "PUT", "/api/user", payload), user.ID)
	recorder := httptest.NewRecorder()
	handler.UpdateUser(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDeleteUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		password   string
		wantStatus int
		wantGone   bool
	}{
		{
			name:       "correct password",
			password:   "password1234",
			wantStatus: http.StatusOK,
			wantGone:   true,
		},
		{
			name:       "wrong password",
			password:   "not-the-password",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userStore := mocks.NewMockUserStore()
			user := mustNewUser(t, "test@example.com", "hashed:password1234")
			userStore.Users[user.Email] = user

			handler := newTestUserHandler(userStore, mocks.NewMockCheckInStore())

			payload := map[string]interface{}{"password": tt.password}
			req := asUser(newJSONRequest(t, "DELETE", "/api/user", payload), user.ID)
			recorder := httptest.NewRecorder()
			handler.DeleteUser(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			_, exists := userStore.Users[user.Email]
			assert.Equal(t, tt.wantGone, !exists)
		})
	}
}
