package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/wellbeing-api/internal/api/shared"
	"github.com/phrazzld/wellbeing-api/internal/platform/logger"
	"github.com/phrazzld/wellbeing-api/internal/redact"
	"github.com/phrazzld/wellbeing-api/internal/service/auth"
	"github.com/phrazzld/wellbeing-api/internal/store"
)

// UserHandler handles requests about the authenticated user's own record.
type UserHandler struct {
	userStore        store.UserStore
	checkInStore     store.CheckInStore
	passwordVerifier auth.PasswordVerifier
	validator        *validator.Validate
	logger           *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(
	userStore store.UserStore,
	checkInStore store.CheckInStore,
	passwordVerifier auth.PasswordVerifier,
	log *slog.Logger,
) *UserHandler {
	if log == nil {
		log = slog.Default()
	}

	return &UserHandler{
		userStore:        userStore,
		checkInStore:     checkInStore,
		passwordVerifier: passwordVerifier,
		validator:        shared.Validate,
		logger:           log.With(slog.String("component", "user_handler")),
	}
}

// GetCurrentUser handles GET /api/user.
// The response embeds the user's check-ins, matching the original
// serialization of the user resource.
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := h.checkInStore.ListByOwner(r.Context(), userID, 1, 100)
	if err != nil {
		log.Error("failed to list check-ins for user", "error", redact.Error(err), "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to load user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user, page.CheckIns))
}

// UpdateUser handles PUT /api/user.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user.Name = req.Name
	user.Email = req.Email

	if err := h.userStore.Update(r.Context(), user); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user, nil))
}

// DeleteUser handles DELETE /api/user.
// The account password must be re-confirmed in the request body.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req DeleteUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid password")
		return
	}

	if err := h.userStore.Delete(r.Context(), userID); err != nil {
		log.Error("failed to delete user", "error", redact.Error(err), "user_id", userID)
		HandleAPIError(w, r, err, "Failed to delete user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{Success: "User deleted"})
}
