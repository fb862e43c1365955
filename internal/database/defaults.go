package database

import (
	"context"

	"github.com/jask/quizgame/internal/database/repository"
	"github.com/jask/quizgame/internal/quiz"
)

// SeedQuestions stores seed when the questions table is empty and returns the
// stored bank. It is idempotent and safe to run on every startup.
func SeedQuestions(ctx context.Context, repo *repository.QuestionRepo, seed []quiz.Question) ([]quiz.Question, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		if err := repo.ReplaceAll(ctx, seed); err != nil {
			return nil, err
		}
	}
	return repo.List(ctx)
}
