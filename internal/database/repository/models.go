package repository

import "time"

// Score represents a finished session row.
type Score struct {
	ID         string
	Score      int
	Total      int
	FinishedAt time.Time
}
