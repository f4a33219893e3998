package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/wellbeing-api/internal/domain"
)

// CheckInPage bundles one page of a user's check-ins together with the
// paging parameters that produced it.
type CheckInPage struct {
	CheckIns []*domain.CheckIn
	Page     int
	Limit    int
	Total    int
}

// CheckInStore defines the interface for check-in data persistence.
// All reads, updates, and deletes are owner-scoped: operations on a
// check-in that exists but belongs to a different user return
// ErrCheckInNotOwned.
type CheckInStore interface {
	// Create saves a new check-in to the store.
	// Returns validation errors from the domain CheckIn if data is invalid.
	Create(ctx context.Context, checkIn *domain.CheckIn) error

	// GetByID retrieves a check-in by its unique ID on behalf of ownerID.
	// Returns ErrCheckInNotFound if the check-in does not exist and
	// ErrCheckInNotOwned if it belongs to another user.
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.CheckIn, error)

	// ListByOwner retrieves one page of the owner's check-ins ordered by
	// date descending. Page numbering starts at 1.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page, limit int) (*CheckInPage, error)

	// Update applies a partial update to a check-in on behalf of ownerID.
	// Only non-nil fields of the update overwrite stored values.
	// Returns ErrCheckInNotFound / ErrCheckInNotOwned as for GetByID.
	Update(ctx context.Context, ownerID, id uuid.UUID, update domain.CheckInUpdate) (*domain.CheckIn, error)

	// Delete removes a check-in by its ID on behalf of ownerID.
	// Returns ErrCheckInNotFound / ErrCheckInNotOwned as for GetByID;
	// a repeated delete of the same ID therefore reports not found.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// RatingTotals counts the owner's check-ins per rating level.
	RatingTotals(ctx context.Context, ownerID uuid.UUID) (*domain.RatingTotals, error)
}
