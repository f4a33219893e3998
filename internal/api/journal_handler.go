package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/wellbeing-api/internal/api/shared"
	"github.com/phrazzld/wellbeing-api/internal/domain"
	"github.com/phrazzld/wellbeing-api/internal/platform/logger"
	"github.com/phrazzld/wellbeing-api/internal/redact"
	"github.com/phrazzld/wellbeing-api/internal/store"
)

// JournalHandler handles journal and journal page requests. A user's
// journal is created lazily the first time they fetch it; pages live
// exclusively inside that journal.
type JournalHandler struct {
	journalStore store.JournalStore
	validator    *validator.Validate
	logger       *slog.Logger
}

// NewJournalHandler creates a new JournalHandler with the given dependencies.
func NewJournalHandler(journalStore store.JournalStore, log *slog.Logger) *JournalHandler {
	if log == nil {
		log = slog.Default()
	}

	return &JournalHandler{
		journalStore: journalStore,
		validator:    shared.Validate,
		logger:       log.With(slog.String("component", "journal_handler")),
	}
}

// GetJournal handles GET /api/user/journal.
// Responds 201 when this request created the journal, 200 otherwise.
func (h *JournalHandler) GetJournal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	journal, created, err := h.journalStore.GetOrCreate(r.Context(), userID)
	if err != nil {
		log.Error("failed to get or create journal", "error", redact.Error(err), "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to load journal")
		return
	}

	pages, err := h.journalStore.ListPages(r.Context(), journal.ID)
	if err != nil {
		log.Error("failed to list journal pages", "error", redact.Error(err), "journal_id", journal.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to load journal")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	shared.RespondWithJSON(w, r, status, journalToResponse(journal, pages))
}

// CreatePage handles POST /api/user/journal/pages.
// The journal is created on the fly if the user does not have one yet.
func (h *JournalHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreatePageRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid date: expected YYYY-MM-DD")
		return
	}

	journal, _, err := h.journalStore.GetOrCreate(r.Context(), userID)
	if err != nil {
		log.Error("failed to get or create journal", "error", redact.Error(err), "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create page")
		return
	}

	page, err := domain.NewJournalPage(journal.ID, date, req.Body)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.journalStore.CreatePage(r.Context(), page); err != nil {
		log.Error("failed to create journal page", "error", redact.Error(err), "journal_id", journal.ID)
		HandleAPIError(w, r, err, "Failed to create page")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, page)
}

// GetPage handles GET /api/user/journal/pages/{id}.
func (h *JournalHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	id, ok := getPathUUID(r, "id")
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid page ID")
		return
	}

	page, err := h.journalStore.GetPageByID(r.Context(), userID, id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, page)
}

// UpdatePage handles PUT /api/user/journal/pages/{id}.
// The page date is fixed at creation; only the body can change.
func (h *JournalHandler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	id, ok := getPathUUID(r, "id")
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid page ID")
		return
	}

	var req UpdatePageRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	page, err := h.journalStore.UpdatePage(r.Context(), userID, id, domain.PageUpdate{Body: &req.Body})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, page)
}

// DeletePage handles DELETE /api/user/journal/pages/{id}.
func (h *JournalHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	id, ok := getPathUUID(r, "id")
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid page ID")
		return
	}

	if err := h.journalStore.DeletePage(r.Context(), userID, id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{Success: "Page deleted"})
}

// SearchPages handles GET /api/user/journal/pages/search?q=...
// An empty query matches every page.
func (h *JournalHandler) SearchPages(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	query := r.URL.Query().Get("q")

	pages, err := h.journalStore.SearchPages(r.Context(), userID, query)
	if err != nil {
		log.Error("failed to search journal pages", "error", redact.Error(err), "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to search pages")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PageListResponse{Pages: pages})
}

// journalToResponse converts a journal and its pages to the response form.
// A nil page slice serializes as [].
func journalToResponse(journal *domain.Journal, pages []*domain.JournalPage) JournalResponse {
	if pages == nil {
		pages = []*domain.JournalPage{}
	}
	return JournalResponse{
		ID:        journal.ID,
		OwnerID:   journal.OwnerID,
		Pages:     pages,
		CreatedAt: journal.CreatedAt,
	}
}
