package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewCheckIn(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	checkIn, err := NewCheckIn(userID, date, 4, []string{"headache"}, []string{"running"}, "felt ok")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if checkIn.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if checkIn.UserID != userID {
		t.Errorf("Expected user ID %v, got %v", userID, checkIn.UserID)
	}

	if checkIn.Rating != 4 {
		t.Errorf("Expected rating 4, got %d", checkIn.Rating)
	}

	if checkIn.CreatedAt.IsZero() || checkIn.UpdatedAt.IsZero() {
		t.Error("Expected non-zero timestamps")
	}

	// Nil tag lists normalize to empty slices, never nil
	checkIn, err = NewCheckIn(userID, date, 3, nil, nil, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if checkIn.Symptoms == nil || len(checkIn.Symptoms) != 0 {
		t.Errorf("Expected empty symptoms slice, got %v", checkIn.Symptoms)
	}
	if checkIn.Activities == nil || len(checkIn.Activities) != 0 {
		t.Errorf("Expected empty activities slice, got %v", checkIn.Activities)
	}

	// Rating out of bounds
	_, err = NewCheckIn(userID, date, 0, nil, nil, "")
	if err != ErrInvalidRating {
		t.Errorf("Expected error %v, got %v", ErrInvalidRating, err)
	}

	_, err = NewCheckIn(userID, date, 6, nil, nil, "")
	if err != ErrInvalidRating {
		t.Errorf("Expected error %v, got %v", ErrInvalidRating, err)
	}

	// Missing owner and date
	_, err = NewCheckIn(uuid.Nil, date, 3, nil, nil, "")
	if err != ErrEmptyCheckInUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyCheckInUserID, err)
	}

	_, err = NewCheckIn(userID, time.Time{}, 3, nil, nil, "")
	if err != ErrEmptyCheckInDate {
		t.Errorf("Expected error %v, got %v", ErrEmptyCheckInDate, err)
	}
}

func TestCheckInApply(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	checkIn, err := NewCheckIn(userID, date, 2, []string{"fatigue"}, []string{"reading"}, "tired")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Updating a single field leaves the others untouched
	newNotes := "much better"
	if err := checkIn.Apply(CheckInUpdate{Notes: &newNotes}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if checkIn.Notes != newNotes {
		t.Errorf("Expected notes %q, got %q", newNotes, checkIn.Notes)
	}
	if checkIn.Rating != 2 {
		t.Errorf("Expected rating unchanged at 2, got %d", checkIn.Rating)
	}
	if len(checkIn.Symptoms) != 1 || checkIn.Symptoms[0] != "fatigue" {
		t.Errorf("Expected symptoms unchanged, got %v", checkIn.Symptoms)
	}
	if !checkIn.Date.Equal(date) {
		t.Errorf("Expected date unchanged, got %v", checkIn.Date)
	}

	// Multi-field update
	newRating := 5
	newActivities := []string{"swimming", "cooking"}
	err = checkIn.Apply(CheckInUpdate{Rating: &newRating, Activities: &newActivities})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if checkIn.Rating != 5 {
		t.Errorf("Expected rating 5, got %d", checkIn.Rating)
	}
	if len(checkIn.Activities) != 2 || checkIn.Activities[0] != "swimming" {
		t.Errorf("Expected updated activities, got %v", checkIn.Activities)
	}

	// An invalid update leaves the check-in unmodified
	badRating := 9
	if err := checkIn.Apply(CheckInUpdate{Rating: &badRating}); err != ErrInvalidRating {
		t.Errorf("Expected error %v, got %v", ErrInvalidRating, err)
	}
	if checkIn.Rating != 5 {
		t.Errorf("Expected rating still 5 after failed update, got %d", checkIn.Rating)
	}

	// Clearing tag lists via pointers to nil slices yields empty slices
	var nilTags []string
	if err := checkIn.Apply(CheckInUpdate{Symptoms: &nilTags}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if checkIn.Symptoms == nil || len(checkIn.Symptoms) != 0 {
		t.Errorf("Expected empty symptoms slice, got %v", checkIn.Symptoms)
	}
}
