package mocks

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/wellbeing-api/internal/domain"
	"github.com/phrazzld/wellbeing-api/internal/store"
)

// MockJournalStore implements store.JournalStore for testing.
type MockJournalStore struct {
	// Function fields for customizable behavior
	GetOrCreateFn func(ctx context.Context, ownerID uuid.UUID) (*domain.Journal, bool, error)
	CreatePageFn  func(ctx context.Context, page *domain.JournalPage) error

	// Data for the default implementation
	Journals map[uuid.UUID]*domain.Journal     // keyed by owner ID
	Pages    map[uuid.UUID]*domain.JournalPage // keyed by page ID
}

var _ store.JournalStore = (*MockJournalStore)(nil)

// NewMockJournalStore creates a new mock store with initialized defaults.
func NewMockJournalStore() *MockJournalStore {
	return &MockJournalStore{
		Journals: make(map[uuid.UUID]*domain.Journal),
		Pages:    make(map[uuid.UUID]*domain.JournalPage),
	}
}

// GetOrCreate implements the JournalStore interface.
func (m *MockJournalStore) GetOrCreate(
	ctx context.Context,
	ownerID uuid.UUID,
) (*domain.Journal, bool, error) {
	if m.GetOrCreateFn != nil {
		return m.GetOrCreateFn(ctx, ownerID)
	}

	if journal, exists := m.Journals[ownerID]; exists {
		return journal, false, nil
	}

	journal, err := domain.NewJournal(ownerID)
	if err != nil {
		return nil, false, err
	}
	m.Journals[ownerID] = journal
	return journal, true, nil
}

// ListPages implements the JournalStore interface.
func (m *MockJournalStore) ListPages(
	ctx context.Context,
	journalID uuid.UUID,
) ([]*domain.JournalPage, error) {
	pages := make([]*domain.JournalPage, 0)
	for _, page := range m.Pages {
		if page.JournalID == journalID {
			pages = append(pages, page)
		}
	}
	sortPagesByDateDesc(pages)
	return pages, nil
}

// CreatePage implements the JournalStore interface.
func (m *MockJournalStore) CreatePage(ctx context.Context, page *domain.JournalPage) error {
	if m.CreatePageFn != nil {
		return m.CreatePageFn(ctx, page)
	}

	m.Pages[page.ID] = page
	return nil
}

// GetPageByID implements the JournalStore interface.
func (m *MockJournalStore) GetPageByID(
	ctx context.Context,
	ownerID, id uuid.UUID,
) (*domain.JournalPage, error) {
	page, exists := m.Pages[id]
	if !exists {
		return nil, store.ErrPageNotFound
	}

	journal, exists := m.Journals[ownerID]
	if !exists || journal.ID != page.JournalID {
		return nil, store.ErrPageNotOwned
	}
	return page, nil
}

// UpdatePage implements the JournalStore interface.
func (m *MockJournalStore) UpdatePage(
	ctx context.Context,
	ownerID, id uuid.UUID,
	update domain.PageUpdate,
) (*domain.JournalPage, error) {
	page, err := m.GetPageByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := page.Apply(update); err != nil {
		return nil, err
	}
	return page, nil
}

// DeletePage implements the JournalStore interface.
func (m *MockJournalStore) DeletePage(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := m.GetPageByID(ctx, ownerID, id); err != nil {
		return err
	}
	delete(m.Pages, id)
	return nil
}

// SearchPages implements the JournalStore interface.
func (m *MockJournalStore) SearchPages(
	ctx context.Context,
	ownerID uuid.UUID,
	query string,
) ([]*domain.JournalPage, error) {
	journal, exists := m.Journals[ownerID]
	if !exists {
		return []*domain.JournalPage{}, nil
	}

	lowered := strings.ToLower(query)
	pages := make([]*domain.JournalPage, 0)
	for _, page := range m.Pages {
		if page.JournalID == journal.ID && strings.Contains(strings.ToLower(page.Body), lowered) {
			pages = append(pages, page)
		}
	}
	sortPagesByDateDesc(pages)
	return pages, nil
}

func sortPagesByDateDesc(pages []*domain.JournalPage) {
	sort.Slice(pages, func(i, j int) bool {
		return pages[i].Date.After(pages[j].Date)
	})
}
