package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jask/quizgame/internal/quiz"
)

// QuestionRepo mirrors the question bank. Position keeps insertion order.
type QuestionRepo struct {
	db *sql.DB
}

func NewQuestionRepo(db *sql.DB) *QuestionRepo { return &QuestionRepo{db: db} }

// ReplaceAll swaps the stored bank for questions in one transaction.
func (r *QuestionRepo) ReplaceAll(ctx context.Context, questions []quiz.Question) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM questions`); err != nil {
		_ = tx.Rollback()
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO questions(position, text, options, correct) VALUES (?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()
	for i, q := range questions {
		opts, err := json.Marshal(q.Options)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("encode options for %q: %w", q.Text, err)
		}
		if _, err := stmt.ExecContext(ctx, i, q.Text, string(opts), q.Correct); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert %q: %w", q.Text, err)
		}
	}
	return tx.Commit()
}

func (r *QuestionRepo) List(ctx context.Context) ([]quiz.Question, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT text, options, correct FROM questions ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []quiz.Question
	for rows.Next() {
		var (
			q    quiz.Question
			opts string
		)
		if err := rows.Scan(&q.Text, &opts, &q.Correct); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(opts), &q.Options); err != nil {
			return nil, fmt.Errorf("decode options for %q: %w", q.Text, err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *QuestionRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n)
	return n, err
}
