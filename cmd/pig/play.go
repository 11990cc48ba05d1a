package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/KirkDiggler/pig/internal/common/uuid"
	"github.com/KirkDiggler/pig/internal/dice"
	"github.com/KirkDiggler/pig/internal/handlers/console"
	"github.com/KirkDiggler/pig/internal/services/game"
	"github.com/KirkDiggler/pig/internal/services/messaging"
)

type PlayCmd struct {
	WinPoints int      `kong:"default='20',env='PIG_WIN_POINTS',help='Banked points needed to win'"`
	Seed      int64    `kong:"default='0',help='Seed for reproducible games, 0 picks one from the clock'"`
	Player    []string `kong:"short='p',help='Seat a player by name instead of prompting, repeat for each seat'"`

	RedisFlags `embed:""`
}

func (c *PlayCmd) Run(logger *log.Logger) error {
	if c.WinPoints < 1 {
		return fmt.Errorf("win points must be at least 1, got %d", c.WinPoints)
	}

	cfg := &game.Config{
		WinPoints:     c.WinPoints,
		DiceRoller:    dice.New(&dice.Config{Seed: c.Seed}),
		Clock:         quartz.NewReal(),
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	}

	if c.RedisAddr != "" {
		repos, err := c.openRepositories()
		if err != nil {
			return err
		}
		defer func() {
			if err := repos.Close(); err != nil {
				logger.Error("Failed to close redis client", "error", err)
			}
		}()

		cfg.GameRepo = repos.games
		cfg.PlayerRepo = repos.players
		logger.Info("Recording game history", "redis_addr", c.RedisAddr)
	}

	msgs, err := messaging.NewService(&messaging.ServiceConfig{
		Seed: c.Seed,
	})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	cons, err := console.New(&console.Config{
		In:               os.Stdin,
		Out:              os.Stdout,
		MessagingService: msgs,
		Logger:           logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create console: %w", err)
	}
	cfg.Console = cons

	svc, err := game.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	// A blocked keyboard read cannot observe cancellation, so leave on the signal
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		sig := <-sigs
		logger.Warn("Interrupted, game abandoned", "signal", sig)
		os.Exit(130)
	}()

	output, err := svc.Play(context.Background(), &game.PlayInput{
		PlayerNames: c.Player,
	})
	if err != nil {
		return err
	}

	logger.Info("Game finished",
		"game_id", output.Game.ID,
		"status", output.Game.Status,
		"rolls", output.Game.RollCount,
		"recorded", output.Record != nil)

	return nil
}
