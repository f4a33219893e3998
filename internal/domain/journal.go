package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Journal and JournalPage
var (
	ErrEmptyJournalID      = errors.New("journal ID cannot be empty")
	ErrEmptyJournalOwnerID = errors.New("journal owner ID cannot be empty")
	ErrEmptyPageID         = errors.New("journal page ID cannot be empty")
	ErrEmptyPageJournalID  = errors.New("journal page journal ID cannot be empty")
	ErrEmptyPageDate       = errors.New("journal page date cannot be empty")
	ErrEmptyPageBody       = errors.New("journal page body cannot be empty")
)

// Journal is a user's single journal. Each user owns at most one journal,
// created lazily on first access; pages belong exclusively to it.
type Journal struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewJournal creates a new Journal owned by the given user.
// Returns an error if validation fails.
func NewJournal(ownerID uuid.UUID) (*Journal, error) {
	journal := &Journal{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}

	if err := journal.Validate(); err != nil {
		return nil, err
	}

	return journal, nil
}

// Validate checks if the Journal has valid data.
func (j *Journal) Validate() error {
	if j.ID == uuid.Nil {
		return ErrEmptyJournalID
	}

	if j.OwnerID == uuid.Nil {
		return ErrEmptyJournalOwnerID
	}

	return nil
}

// JournalPage is a dated free-text entry in a journal.
type JournalPage struct {
	ID        uuid.UUID `json:"id"`
	JournalID uuid.UUID `json:"journal_id"`
	Date      time.Time `json:"date"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageUpdate describes a partial update to a journal page. Nil fields
// leave the stored value unchanged.
type PageUpdate struct {
	Date *time.Time
	Body *string
}

// NewJournalPage creates a new JournalPage in the given journal.
// Returns an error if validation fails.
func NewJournalPage(journalID uuid.UUID, date time.Time, body string) (*JournalPage, error) {
	now := time.Now().UTC()
	page := &JournalPage{
		ID:        uuid.New(),
		JournalID: journalID,
		Date:      date,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := page.Validate(); err != nil {
		return nil, err
	}

	return page, nil
}

// Validate checks if the JournalPage has valid data.
func (p *JournalPage) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPageID
	}

	if p.JournalID == uuid.Nil {
		return ErrEmptyPageJournalID
	}

	if p.Date.IsZero() {
		return ErrEmptyPageDate
	}

	if p.Body == "" {
		return ErrEmptyPageBody
	}

	return nil
}

// Apply merges the non-nil fields of the update into the page and
// refreshes the UpdatedAt timestamp. Returns an error if the merged page
// fails validation.
func (p *JournalPage) Apply(update PageUpdate) error {
	merged := *p

	if update.Date != nil {
		merged.Date = *update.Date
	}
	if update.Body != nil {
		merged.Body = *update.Body
	}
	merged.UpdatedAt = time.Now().UTC()

	if err := merged.Validate(); err != nil {
		return err
	}

	*p = merged
	return nil
}
