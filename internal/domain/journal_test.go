package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewJournal(t *testing.T) {
	ownerID := uuid.New()

	journal, err := NewJournal(ownerID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if journal.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if journal.OwnerID != ownerID {
		t.Errorf("Expected owner ID %v, got %v", ownerID, journal.OwnerID)
	}

	if journal.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	_, err = NewJournal(uuid.Nil)
	if err != ErrEmptyJournalOwnerID {
		t.Errorf("Expected error %v, got %v", ErrEmptyJournalOwnerID, err)
	}
}

func TestNewJournalPage(t *testing.T) {
	journalID := uuid.New()
	date := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	page, err := NewJournalPage(journalID, date, "Dear diary")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if page.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if page.JournalID != journalID {
		t.Errorf("Expected journal ID %v, got %v", journalID, page.JournalID)
	}

	if page.Body != "Dear diary" {
		t.Errorf("Expected body %q, got %q", "Dear diary", page.Body)
	}

	// Empty body is rejected
	_, err = NewJournalPage(journalID, date, "")
	if err != ErrEmptyPageBody {
		t.Errorf("Expected error %v, got %v", ErrEmptyPageBody, err)
	}

	// Missing date is rejected
	_, err = NewJournalPage(journalID, time.Time{}, "body")
	if err != ErrEmptyPageDate {
		t.Errorf("Expected error %v, got %v", ErrEmptyPageDate, err)
	}
}

func TestJournalPageApply(t *testing.T) {
	page, err := NewJournalPage(uuid.New(), time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), "first draft")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	originalDate := page.Date

	newBody := "second draft"
	if err := page.Apply(PageUpdate{Body: &newBody}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if page.Body != newBody {
		t.Errorf("Expected body %q, got %q", newBody, page.Body)
	}
	if !page.Date.Equal(originalDate) {
		t.Errorf("Expected date unchanged, got %v", page.Date)
	}

	// Emptying the body fails validation and leaves the page unmodified
	empty := ""
	if err := page.Apply(PageUpdate{Body: &empty}); err != ErrEmptyPageBody {
		t.Errorf("Expected error %v, got %v", ErrEmptyPageBody, err)
	}
	if page.Body != newBody {
		t.Errorf("Expected body still %q after failed update, got %q", newBody, page.Body)
	}
}
