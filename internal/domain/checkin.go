package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Rating bounds for a mood check-in.
const (
	MinRating = 1
	MaxRating = 5
)

// Common validation errors for CheckIn
var (
	ErrEmptyCheckInID     = errors.New("check-in ID cannot be empty")
	ErrEmptyCheckInUserID = errors.New("check-in user ID cannot be empty")
	ErrEmptyCheckInDate   = errors.New("check-in date cannot be empty")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
)

// CheckIn represents a single dated mood log entry. A rating of 1 is the
// lowest mood and 5 the highest; symptoms and activities are free-form
// ordered tag lists.
type CheckIn struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Date       time.Time `json:"date"`
	Rating     int       `json:"rating"`
	Symptoms   []string  `json:"symptoms"`
	Activities []string  `json:"activities"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CheckInUpdate describes a partial update to a check-in. Each field is
// independently nil-or-set: nil fields leave the stored value unchanged.
type CheckInUpdate struct {
	Date       *time.Time
	Rating     *int
	Symptoms   *[]string
	Activities *[]string
	Notes      *string
}

// RatingTotals holds per-level counts of a user's check-in ratings.
type RatingTotals struct {
	VeryBad  int `json:"very_bad"`
	Bad      int `json:"bad"`
	Neutral  int `json:"neutral"`
	Good     int `json:"good"`
	VeryGood int `json:"very_good"`
}

// NewCheckIn creates a new CheckIn owned by the given user. Nil tag lists
// are normalized to empty slices so they serialize as [] rather than null.
// Returns an error if validation fails.
func NewCheckIn(
	userID uuid.UUID,
	date time.Time,
	rating int,
	symptoms, activities []string,
	notes string,
) (*CheckIn, error) {
	now := time.Now().UTC()
	checkIn := &CheckIn{
		ID:         uuid.New(),
		UserID:     userID,
		Date:       date,
		Rating:     rating,
		Symptoms:   normalizeTags(symptoms),
		Activities: normalizeTags(activities),
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := checkIn.Validate(); err != nil {
		return nil, err
	}

	return checkIn, nil
}

// Validate checks if the CheckIn has valid data.
// Returns an error if any field fails validation.
func (c *CheckIn) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCheckInID
	}

	if c.UserID == uuid.Nil {
		return ErrEmptyCheckInUserID
	}

	if c.Date.IsZero() {
		return ErrEmptyCheckInDate
	}

	if c.Rating < MinRating || c.Rating > MaxRating {
		return ErrInvalidRating
	}

	return nil
}

// Apply merges the non-nil fields of the update into the check-in and
// refreshes the UpdatedAt timestamp. The owner and creation time are never
// touched. Returns an error if the merged check-in fails validation.
func (c *CheckIn) Apply(update CheckInUpdate) error {
	merged := *c

	if update.Date != nil {
		merged.Date = *update.Date
	}
	if update.Rating != nil {
		merged.Rating = *update.Rating
	}
	if update.Symptoms != nil {
		merged.Symptoms = normalizeTags(*update.Symptoms)
	}
	if update.Activities != nil {
		merged.Activities = normalizeTags(*update.Activities)
	}
	if update.Notes != nil {
		merged.Notes = *update.Notes
	}
	merged.UpdatedAt = time.Now().UTC()

	if err := merged.Validate(); err != nil {
		return err
	}

	*c = merged
	return nil
}

// normalizeTags returns the given tag list, replacing nil with an empty
// slice. Order is preserved.
func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
