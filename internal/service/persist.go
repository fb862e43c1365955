package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jask/quizgame/internal/database"
	"github.com/jask/quizgame/internal/database/repository"
	"github.com/jask/quizgame/internal/game"
)

// Persister mirrors navigator changes into storage. Write failures are logged
// and reported through OnError; the in-memory game carries on regardless.
type Persister struct {
	Ctx     context.Context
	Storage *Storage
	Log     zerolog.Logger
	OnError func(error)
}

func (p *Persister) Notify(c game.Change) {
	if c.Store != nil {
		if err := p.Storage.Questions.ReplaceAll(p.Ctx, c.Store); err != nil {
			p.fail(err, "save question bank")
		}
	}
	if c.Finished != nil {
		score := repository.Score{
			ID:         c.Finished.ID.String(),
			Score:      c.Finished.Score,
			Total:      c.Finished.Total,
			FinishedAt: database.Now(),
		}
		if err := p.Storage.Scores.Insert(p.Ctx, score); err != nil {
			p.fail(err, "save score")
		}
	}
}

func (p *Persister) fail(err error, what string) {
	p.Log.Error().Err(err).Msg(what)
	if p.OnError != nil {
		p.OnError(err)
	}
}
