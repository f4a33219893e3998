package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/wellbeing-api/internal/domain"
)

// JournalStore defines the interface for journal and journal page
// persistence. Page reads, updates, and deletes are owner-scoped through
// the page's journal: operations on a page whose journal belongs to a
// different user return ErrPageNotOwned.
type JournalStore interface {
	// GetOrCreate returns the user's journal, creating it if the user does
	// not have one yet. The returned bool reports whether the journal was
	// created by this call.
	GetOrCreate(ctx context.Context, ownerID uuid.UUID) (*domain.Journal, bool, error)

	// ListPages retrieves all pages of the given journal ordered by date
	// descending.
	ListPages(ctx context.Context, journalID uuid.UUID) ([]*domain.JournalPage, error)

	// CreatePage saves a new page to the store.
	// Returns validation errors from the domain JournalPage if data is invalid.
	CreatePage(ctx context.Context, page *domain.JournalPage) error

	// GetPageByID retrieves a page by its unique ID on behalf of ownerID.
	// Returns ErrPageNotFound if the page does not exist and
	// ErrPageNotOwned if its journal belongs to another user.
	GetPageByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.JournalPage, error)

	// UpdatePage applies a partial update to a page on behalf of ownerID.
	// Returns ErrPageNotFound / ErrPageNotOwned as for GetPageByID.
	UpdatePage(ctx context.Context, ownerID, id uuid.UUID, update domain.PageUpdate) (*domain.JournalPage, error)

	// DeletePage removes a page by its ID on behalf of ownerID.
	// Returns ErrPageNotFound / ErrPageNotOwned as for GetPageByID.
	DeletePage(ctx context.Context, ownerID, id uuid.UUID) error

	// SearchPages retrieves the owner's pages whose body contains the
	// query as a case-insensitive substring, ordered by date descending.
	SearchPages(ctx context.Context, ownerID uuid.UUID, query string) ([]*domain.JournalPage, error)
}
