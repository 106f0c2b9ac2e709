package service

import (
	"testing"
	"time"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
)

func TestNewHistoryService(t *testing.T) {
	svc := NewHistoryService(repository.NewHistoryRepository(nil))
	if svc == nil {
		t.Fatal("expected non-nil HistoryService")
	}
}

func TestRecordsToResponse_EmptySlice(t *testing.T) {
	result := recordsToResponse(nil)

	if result == nil {
		t.Fatal("expected non-nil empty slice, got nil")
	}
	if len(result) != 0 {
		t.Errorf("expected 0 records, got %d", len(result))
	}
}

func TestRecordsToResponse_SplitsClasses(t *testing.T) {
	now := time.Now().UTC()

	records := []model.HistoryRecord{
		{
			ID:        7,
			Length:    12,
			Classes:   "lowercase,numbers",
			Strength:  "medium",
			CreatedAt: now,
		},
	}

	result := recordsToResponse(records)

	if len(result) != 1 {
		t.Fatalf("expected 1 record, got %d", len(result))
	}
	if result[0].ID != 7 {
		t.Errorf("expected id 7, got %d", result[0].ID)
	}
	if len(result[0].Classes) != 2 || result[0].Classes[0] != "lowercase" || result[0].Classes[1] != "numbers" {
		t.Errorf("unexpected classes: %v", result[0].Classes)
	}
	if result[0].Strength != "medium" {
		t.Errorf("expected strength %q, got %q", "medium", result[0].Strength)
	}
}

func TestRecordsToResponse_EmptyClasses(t *testing.T) {
	result := recordsToResponse([]model.HistoryRecord{{ID: 1, Length: 8}})

	if len(result) != 1 {
		t.Fatalf("expected 1 record, got %d", len(result))
	}
	if result[0].Classes != nil {
		t.Errorf("expected nil classes for empty string, got %v", result[0].Classes)
	}
}
