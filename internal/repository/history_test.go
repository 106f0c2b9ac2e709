package repository

import (
	"testing"
)

func TestNewHistoryRepository(t *testing.T) {
	repo := NewHistoryRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil HistoryRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestHistorySentinelErrors(t *testing.T) {
	if ErrRecordNotFound == nil {
		t.Fatal("ErrRecordNotFound should not be nil")
	}
	if ErrRecordNotFound.Error() != "history record not found" {
		t.Fatalf("unexpected error message: %s", ErrRecordNotFound.Error())
	}
}
