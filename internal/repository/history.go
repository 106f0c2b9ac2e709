package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/passforge/passforge-go/internal/model"
)

var ErrRecordNotFound = errors.New("history record not found")

// historyPageSize bounds how many records a single list call returns.
const historyPageSize = 100

// HistoryRepository handles generation-history persistence operations.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Create inserts a new history record and sets the generated ID on the record.
func (r *HistoryRepository) Create(ctx context.Context, record *model.HistoryRecord) error {
	query := `INSERT INTO history_records (user_id, length, classes, strength) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, record.UserID, record.Length, record.Classes, record.Strength)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	record.ID = id
	return nil
}

// ListByUser retrieves a user's history records, newest first, bounded to one page.
func (r *HistoryRepository) ListByUser(ctx context.Context, userID int64) ([]model.HistoryRecord, error) {
	query := `SELECT id, user_id, length, classes, strength, created_at
		FROM history_records WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, userID, historyPageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.HistoryRecord
	for rows.Next() {
		var rec model.HistoryRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Length, &rec.Classes, &rec.Strength, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Delete removes a single history record owned by the user.
func (r *HistoryRepository) Delete(ctx context.Context, userID, recordID int64) error {
	query := `DELETE FROM history_records WHERE user_id = ? AND id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, recordID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// Clear removes all history records for the user and reports how many were deleted.
func (r *HistoryRepository) Clear(ctx context.Context, userID int64) (int64, error) {
	query := `DELETE FROM history_records WHERE user_id = ?`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
