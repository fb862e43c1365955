package repository

import (
	"context"
	"database/sql"
)

// ScoreRepo records finished sessions.
type ScoreRepo struct {
	db *sql.DB
}

func NewScoreRepo(db *sql.DB) *ScoreRepo { return &ScoreRepo{db: db} }

func (r *ScoreRepo) Insert(ctx context.Context, s Score) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO scores(id, score, total, finished_at) VALUES (?, ?, ?, ?)
	`, s.ID, s.Score, s.Total, s.FinishedAt.UTC())
	return err
}

// Last returns the most recently finished session, or nil when none exist.
func (r *ScoreRepo) Last(ctx context.Context) (*Score, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, score, total, finished_at FROM scores ORDER BY finished_at DESC, rowid DESC LIMIT 1`)
	var s Score
	if err := row.Scan(&s.ID, &s.Score, &s.Total, &s.FinishedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
