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

// CheckInHandler handles check-in CRUD requests. Every operation is
// owner-scoped: the authenticated identity must own the check-in it
// reads, updates, or deletes.
type CheckInHandler struct {
	checkInStore store.CheckInStore
	validator    *validator.Validate
	logger       *slog.Logger
}

// NewCheckInHandler creates a new CheckInHandler with the given dependencies.
func NewCheckInHandler(checkInStore store.CheckInStore, log *slog.Logger) *CheckInHandler {
	if log == nil {
		log = slog.Default()
	}

	return &CheckInHandler{
		checkInStore: checkInStore,
		validator:    shared.Validate,
		logger:       log.With(slog.String("component", "checkin_handler")),
	}
}

// CreateCheckIn handles POST /api/user/check-ins.
func (h *CheckInHandler) CreateCheckIn(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateCheckInRequest
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

	checkIn, err := domain.NewCheckIn(userID, date, req.Rating, req.Symptoms, req.Activities, req.Notes)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.checkInStore.Create(r.Context(), checkIn); err != nil {
		log.Error("failed to create check-in", "error", redact.Error(err), "user_id", userID)
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, checkIn)
}

// ListCheckIns handles GET /api/user/check-ins.
// Returns one page of the user's check-ins ordered by date descending,
// plus the per-rating totals across all of them.
func (h *CheckInHandler) ListCheckIns(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	page, limit := getPagination(r)

	checkInPage, err := h.checkInStore.ListByOwner(r.Context(), userID, page, limit)
	if err != nil {
		log.Error("failed to list check-ins", "error", redact.Error(err), "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list check-ins")
		return
	}

	totals, err := h.checkInStore.RatingTotals(r.Context(), userID)
	if err != nil {
		log.Error("failed to compute rating totals", "error", redact.Error(err), "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list check-ins")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CheckInListResponse{
		CheckIns: checkInPage.CheckIns,
		Totals:   totals,
		Page:     checkInPage.Page,
		Limit:    checkInPage.Limit,
		Total:    checkInPage.Total,
	})
}

// GetCheckIn handles GET /api/user/check-ins/{id}.
func (h *CheckInHandler) GetCheckIn(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	id, ok := getPathUUID(r, "id")
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid check-in ID")
		return
	}

	checkIn, err := h.checkInStore.GetByID(r.Context(), userID, id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, checkIn)
}

// UpdateCheckIn handles PUT /api/user/check-ins/{id}.
// Only the fields present in the payload overwrite stored values.
func (h *CheckInHandler) UpdateCheckIn(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	id, ok := getPathUUID(r, "id")
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid check-in ID")
		return
	}

	var req UpdateCheckInRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	update := domain.CheckInUpdate{
		Rating:     req.Rating,
		Symptoms:   req.Symptoms,
		Activities: req.Activities,
		Notes:      req.Notes,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid date: expected YYYY-MM-DD")
			return
		}
		update.Date = &date
	}

	checkIn, err := h.checkInStore.Update(r.Context(), userID, id, update)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, checkIn)
}

// DeleteCheckIn handles DELETE /api/user/check-ins/{id}.
// Deleting the same ID a second time reports not found.
func (h *CheckInHandler) DeleteCheckIn(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	id, ok := getPathUUID(r, "id")
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid check-in ID")
		return
	}

	if err := h.checkInStore.Delete(r.Context(), userID, id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{Success: "Check-in deleted"})
}
