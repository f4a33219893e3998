package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		isNotFound bool
		isNotOwned bool
		isDup      bool
	}{
		{"user not found", ErrUserNotFound, true, false, false},
		{"check-in not found", ErrCheckInNotFound, true, false, false},
		{"page not found", ErrPageNotFound, true, false, false},
		{"check-in not owned", ErrCheckInNotOwned, false, true, false},
		{"page not owned", ErrPageNotOwned, false, true, false},
		{"email exists", ErrEmailExists, false, false, true},
		{"wrapped not found", fmt.Errorf("context: %w", ErrJournalNotFound), true, false, false},
		{"unrelated error", errors.New("boom"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundError(tt.err); got != tt.isNotFound {
				t.Errorf("IsNotFoundError = %v, want %v", got, tt.isNotFound)
			}
			if got := IsNotOwnedError(tt.err); got != tt.isNotOwned {
				t.Errorf("IsNotOwnedError = %v, want %v", got, tt.isNotOwned)
			}
			if got := IsDuplicateError(tt.err); got != tt.isDup {
				t.Errorf("IsDuplicateError = %v, want %v", got, tt.isDup)
			}
		})
	}
}

func TestEntityErrorsUnwrapToGeneric(t *testing.T) {
	if !errors.Is(ErrCheckInNotOwned, ErrNotOwned) {
		t.Error("ErrCheckInNotOwned should wrap ErrNotOwned")
	}
	if !errors.Is(ErrEmailExists, ErrDuplicate) {
		t.Error("ErrEmailExists should wrap ErrDuplicate")
	}
	if !errors.Is(ErrUserNotFound, ErrNotFound) {
		t.Error("ErrUserNotFound should wrap ErrNotFound")
	}
}
