// Package main runs the Pass the Pigs scorekeeper on the terminal.
// It wires together configuration, logging, the scoring table, and the
// console session.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/pigs/internal/config"
	"github.com/cory-johannsen/pigs/internal/frontend/console"
	"github.com/cory-johannsen/pigs/internal/game/command"
	"github.com/cory-johannsen/pigs/internal/game/pigs"
	"github.com/cory-johannsen/pigs/internal/game/toss"
	"github.com/cory-johannsen/pigs/internal/observability"
	"github.com/cory-johannsen/pigs/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (defaults and PIGS_* environment when empty)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	game, err := newGame(cfg.Game, logger)
	if err != nil {
		logger.Fatal("creating game", zap.Error(err))
	}

	thrower := toss.NewThrower(toss.NewCryptoSource(), logger)
	session := console.NewSession(game, command.DefaultRegistry(), thrower, cfg.Console, logger)

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("console", &server.FuncService{
		StartFn: func(ctx context.Context) error {
			return session.Run(ctx, os.Stdin, os.Stdout)
		},
	})

	logger.Info("scorekeeper initialized",
		zap.Int("target_score", cfg.Game.TargetScore),
		zap.Int("min_players", cfg.Game.MinPlayers),
		zap.Duration("startup", time.Since(start)),
	)

	if err := lifecycle.Run(context.Background()); err != nil {
		logger.Fatal("scorekeeper error", zap.Error(err))
	}
}

// newGame builds a Game from configuration, loading a house scoring table
// when one is configured.
//
// Postcondition: Returns a Game in pregame or a non-nil error.
func newGame(cfg config.GameConfig, logger *zap.Logger) (*pigs.Game, error) {
	table := pigs.DefaultTable()
	if cfg.ScoresFile != "" {
		t, err := pigs.LoadTableFile(cfg.ScoresFile)
		if err != nil {
			return nil, err
		}
		table = t
		logger.Info("scoring table loaded", zap.String("path", cfg.ScoresFile))
	}

	return pigs.New(
		pigs.WithTable(table),
		pigs.WithRules(pigs.Rules{TargetScore: cfg.TargetScore, MinPlayers: cfg.MinPlayers}),
		pigs.WithLogger(logger),
	)
}
