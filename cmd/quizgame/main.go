package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/jask/quizgame/internal/bank"
	"github.com/jask/quizgame/internal/config"
	"github.com/jask/quizgame/internal/game"
	"github.com/jask/quizgame/internal/logging"
	"github.com/jask/quizgame/internal/quiz"
	"github.com/jask/quizgame/internal/service"
	"github.com/jask/quizgame/internal/tui"
)

const usage = "usage: quizgame [export <file.yaml|file.json>]"

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string) error {
	var exportPath string
	switch {
	case len(args) == 0:
	case len(args) == 2 && args[0] == "export":
		exportPath = args[1]
	default:
		return errors.New(usage)
	}

	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warn: .env: %v", err)
	}

	if wrote, err := config.WriteDefault(); err != nil {
		log.Printf("warn: default config: %v", err)
	} else if wrote {
		log.Printf("wrote default config to %s", config.Path())
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closer.Close()

	questions := quiz.Seed()
	if cfg.Questions.File != "" {
		questions, err = bank.LoadFile(cfg.Questions.File)
		if err != nil {
			return fmt.Errorf("question bank: %w", err)
		}
		logger.Info().Str("file", cfg.Questions.File).Int("questions", len(questions)).Msg("loaded question bank")
	}

	var storage *service.Storage
	lastScore := 0
	if cfg.Storage.Path != "" {
		storage, err = service.OpenStorage(cfg.Storage.Path)
		if err != nil {
			return fmt.Errorf("storage: %w", err)
		}
		defer storage.Close()
		questions, lastScore, err = storage.Restore(ctx, questions)
		if err != nil {
			return fmt.Errorf("restore: %w", err)
		}
		logger.Info().Str("path", cfg.Storage.Path).Int("questions", len(questions)).Int("last_score", lastScore).Msg("storage opened")
	}

	now := uint64(time.Now().UnixNano())
	nav := game.New(quiz.NewStore(questions), rand.New(rand.NewPCG(now, now>>32|1)))
	nav.RestoreLastScore(lastScore)

	if exportPath != "" {
		if err := bank.Export(exportPath, nav.Store().All()); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		logger.Info().Str("file", exportPath).Int("questions", nav.Store().Len()).Msg("exported question bank")
		fmt.Printf("exported %d questions to %s\n", nav.Store().Len(), exportPath)
		return nil
	}

	app := tui.New(nav, tui.Options{Welcome: cfg.UI.Welcome, NoColor: cfg.UI.NoColor})

	nav.Subscribe(game.LogListener(logger))
	if storage != nil {
		nav.Subscribe(&service.Persister{Ctx: ctx, Storage: storage, Log: logger, OnError: app.ReportError})
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
