package service

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jask/quizgame/internal/database"
	"github.com/jask/quizgame/internal/database/repository"
	"github.com/jask/quizgame/internal/quiz"
)

// Storage bundles the sqlite handle and its repositories.
type Storage struct {
	DB        *sql.DB
	Questions *repository.QuestionRepo
	Scores    *repository.ScoreRepo
}

// OpenStorage migrates and opens the database at path, creating its directory.
func OpenStorage(path string) (*Storage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(path); err != nil {
		return nil, err
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return &Storage{
		DB:        db,
		Questions: repository.NewQuestionRepo(db),
		Scores:    repository.NewScoreRepo(db),
	}, nil
}

func (s *Storage) Close() error { return s.DB.Close() }

// Restore returns the stored bank, seeding it from seed on first run, and the
// last finished score (0 when there is none).
func (s *Storage) Restore(ctx context.Context, seed []quiz.Question) ([]quiz.Question, int, error) {
	questions, err := database.SeedQuestions(ctx, s.Questions, seed)
	if err != nil {
		return nil, 0, fmt.Errorf("seed questions: %w", err)
	}
	last, err := s.Scores.Last(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("last score: %w", err)
	}
	if last == nil {
		return questions, 0, nil
	}
	return questions, last.Score, nil
}
