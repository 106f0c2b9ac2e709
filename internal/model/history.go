package model

import "time"

// HistoryRecord represents one generation-history row in the database.
// Only metadata is stored — never the generated password itself.
type HistoryRecord struct {
	ID        int64
	UserID    int64
	Length    int
	Classes   string // comma-separated class names in pool order
	Strength  string
	CreatedAt time.Time
}

// HistoryRecordResponse represents a single history record in API responses.
type HistoryRecordResponse struct {
	ID        int64     `json:"id"`
	Length    int       `json:"length"`
	Classes   []string  `json:"classes"`
	Strength  string    `json:"strength"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryListResponse represents a page of history records, newest first.
type HistoryListResponse struct {
	Records []HistoryRecordResponse `json:"records"`
	Total   int                     `json:"total"`
}
