package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/wellbeing-api/internal/domain"
)

// Date layout accepted for dob, check-in dates, and journal page dates.
const dateLayout = "2006-01-02"

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	DOB      string `json:"dob"      validate:"required,datetime=2006-01-02"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// ChangePasswordRequest defines the payload for the change-password endpoint.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72"`
}

// UpdateUserRequest defines the payload for the user update endpoint.
type UpdateUserRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// DeleteUserRequest defines the payload for the user deletion endpoint.
// The password re-confirmation guards against a stolen token deleting the
// account.
type DeleteUserRequest struct {
	Password string `json:"password" validate:"required"`
}

// CreateCheckInRequest defines the payload for check-in creation.
// Activities, symptoms, and notes are optional.
type CreateCheckInRequest struct {
	Date       string   `json:"date"       validate:"required"`
	Rating     int      `json:"rating"     validate:"required,gte=1,lte=5"`
	Symptoms   []string `json:"symptoms"`
	Activities []string `json:"activities"`
	Notes      string   `json:"notes"`
}

// UpdateCheckInRequest defines the payload for a partial check-in update.
// Absent fields leave the stored values unchanged.
type UpdateCheckInRequest struct {
	Date       *string   `json:"date"`
	Rating     *int      `json:"rating"     validate:"omitempty,gte=1,lte=5"`
	Symptoms   *[]string `json:"symptoms"`
	Activities *[]string `json:"activities"`
	Notes      *string   `json:"notes"`
}

// CreatePageRequest defines the payload for journal page creation.
type CreatePageRequest struct {
	Date string `json:"date" validate:"required"`
	Body string `json:"body" validate:"required"`
}

// UpdatePageRequest defines the payload for a journal page update.
type UpdatePageRequest struct {
	Body string `json:"body" validate:"required"`
}

// SuccessResponse reports a completed operation that returns no entity.
type SuccessResponse struct {
	Success string `json:"success"`
}

// UserResponse is the serialized form of a user, embedding the user's
// check-ins the way the API has always reported them.
type UserResponse struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	DOB       string            `json:"dob"`
	CheckIns  []*domain.CheckIn `json:"check_ins"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// userToResponse converts a domain user and its check-ins to the response
// form. A nil check-in slice serializes as [].
func userToResponse(user *domain.User, checkIns []*domain.CheckIn) UserResponse {
	if checkIns == nil {
		checkIns = []*domain.CheckIn{}
	}
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		DOB:       user.DOB.Format(dateLayout),
		CheckIns:  checkIns,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// CheckInListResponse is one page of a user's check-ins together with the
// per-rating totals across all of them.
type CheckInListResponse struct {
	CheckIns []*domain.CheckIn    `json:"check_ins"`
	Totals   *domain.RatingTotals `json:"totals"`
	Page     int                  `json:"page"`
	Limit    int                  `json:"limit"`
	Total    int                  `json:"total"`
}

// JournalResponse is the serialized form of a journal with its pages.
type JournalResponse struct {
	ID        uuid.UUID             `json:"id"`
	OwnerID   uuid.UUID             `json:"owner_id"`
	Pages     []*domain.JournalPage `json:"pages"`
	CreatedAt time.Time             `json:"created_at"`
}

// PageListResponse wraps a list of journal pages, e.g. search results.
type PageListResponse struct {
	Pages []*domain.JournalPage `json:"pages"`
}

// parseDate parses a date that may carry a time component.
// Accepts YYYY-MM-DD or RFC 3339.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
