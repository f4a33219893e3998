package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/phrazzld/wellbeing-api/internal/domain"
	"github.com/phrazzld/wellbeing-api/internal/store"
)

// MockCheckInStore implements store.CheckInStore for testing.
type MockCheckInStore struct {
	// Function fields for customizable behavior
	CreateFn       func(ctx context.Context, checkIn *domain.CheckIn) error
	GetByIDFn      func(ctx context.Context, ownerID, id uuid.UUID) (*domain.CheckIn, error)
	ListByOwnerFn  func(ctx context.Context, ownerID uuid.UUID, page, limit int) (*store.CheckInPage, error)
	UpdateFn       func(ctx context.Context, ownerID, id uuid.UUID, update domain.CheckInUpdate) (*domain.CheckIn, error)
	DeleteFn       func(ctx context.Context, ownerID, id uuid.UUID) error
	RatingTotalsFn func(ctx context.Context, ownerID uuid.UUID) (*domain.RatingTotals, error)

	// Data for the default implementation, keyed by check-in ID
	CheckIns    map[uuid.UUID]*domain.CheckIn
	CreateError error
}

var _ store.CheckInStore = (*MockCheckInStore)(nil)

// NewMockCheckInStore creates a new mock store with initialized defaults.
func NewMockCheckInStore() *MockCheckInStore {
	return &MockCheckInStore{
		CheckIns: make(map[uuid.UUID]*domain.CheckIn),
	}
}

// Create implements the CheckInStore interface.
func (m *MockCheckInStore) Create(ctx context.Context, checkIn *domain.CheckIn) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, checkIn)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.CheckIns[checkIn.ID] = checkIn
	return nil
}

// GetByID implements the CheckInStore interface.
func (m *MockCheckInStore) GetByID(
	ctx context.Context,
	ownerID, id uuid.UUID,
) (*domain.CheckIn, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, ownerID, id)
	}

	checkIn, exists := m.CheckIns[id]
	if !exists {
		return nil, store.ErrCheckInNotFound
	}
	if checkIn.UserID != ownerID {
		return nil, store.ErrCheckInNotOwned
	}
	return checkIn, nil
}

// ListByOwner implements the CheckInStore interface.
func (m *MockCheckInStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	page, limit int,
) (*store.CheckInPage, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID, page, limit)
	}

	owned := m.ownedByDateDesc(ownerID)
	total := len(owned)

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &store.CheckInPage{
		CheckIns: owned[start:end],
		Page:     page,
		Limit:    limit,
		Total:    total,
	}, nil
}

// Update implements the CheckInStore interface.
func (m *MockCheckInStore) Update(
	ctx context.Context,
	ownerID, id uuid.UUID,
	update domain.CheckInUpdate,
) (*domain.CheckIn, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, ownerID, id, update)
	}

	checkIn, err := m.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := checkIn.Apply(update); err != nil {
		return nil, err
	}
	return checkIn, nil
}

// Delete implements the CheckInStore interface.
func (m *MockCheckInStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, ownerID, id)
	}

	if _, err := m.GetByID(ctx, ownerID, id); err != nil {
		return err
	}
	delete(m.CheckIns, id)
	return nil
}

// RatingTotals implements the CheckInStore interface.
func (m *MockCheckInStore) RatingTotals(
	ctx context.Context,
	ownerID uuid.UUID,
) (*domain.RatingTotals, error) {
	if m.RatingTotalsFn != nil {
		return m.RatingTotalsFn(ctx, ownerID)
	}

	totals := &domain.RatingTotals{}
	for _, checkIn := range m.CheckIns {
		if checkIn.UserID != ownerID {
			continue
		}
		switch checkIn.Rating {
		case 1:
			totals.VeryBad++
		case 2:
			totals.Bad++
		case 3:
			totals.Neutral++
		case 4:
			totals.Good++
		case 5:
			totals.VeryGood++
		}
	}
	return totals, nil
}

// ownedByDateDesc returns the owner's check-ins ordered by date descending.
func (m *MockCheckInStore) ownedByDateDesc(ownerID uuid.UUID) []*domain.CheckIn {
	owned := make([]*domain.CheckIn, 0)
	for _, checkIn := range m.CheckIns {
		if checkIn.UserID == ownerID {
			owned = append(owned, checkIn)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].Date.After(owned[j].Date)
	})
	return owned
}
