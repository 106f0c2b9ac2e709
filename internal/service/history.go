package service

import (
	"context"
	"errors"
	"strings"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
)

var ErrRecordNotFound = errors.New("history record not found")

// HistoryService handles generation-history business logic.
type HistoryService struct {
	repo *repository.HistoryRepository
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(repo *repository.HistoryRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// List returns the user's history records, newest first.
func (s *HistoryService) List(ctx context.Context, userID int64) (model.HistoryListResponse, error) {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return model.HistoryListResponse{}, err
	}

	return model.HistoryListResponse{
		Records: recordsToResponse(records),
		Total:   len(records),
	}, nil
}

// Delete removes a single history record owned by the user.
func (s *HistoryService) Delete(ctx context.Context, userID, recordID int64) error {
	err := s.repo.Delete(ctx, userID, recordID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return err
}

// Clear removes all of the user's history records and reports how many were deleted.
func (s *HistoryService) Clear(ctx context.Context, userID int64) (int64, error) {
	return s.repo.Clear(ctx, userID)
}

// recordsToResponse converts a slice of HistoryRecord to API responses.
func recordsToResponse(records []model.HistoryRecord) []model.HistoryRecordResponse {
	result := make([]model.HistoryRecordResponse, len(records))
	for i, rec := range records {
		var classes []string
		if rec.Classes != "" {
			classes = strings.Split(rec.Classes, ",")
		}
		result[i] = model.HistoryRecordResponse{
			ID:        rec.ID,
			Length:    rec.Length,
			Classes:   classes,
			Strength:  rec.Strength,
			CreatedAt: rec.CreatedAt,
		}
	}
	return result
}
