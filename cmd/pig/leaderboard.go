package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/KirkDiggler/pig/internal/handlers/console"
	gameRepo "github.com/KirkDiggler/pig/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/pig/internal/repositories/player"
	"github.com/KirkDiggler/pig/internal/services/messaging"
)

type LeaderboardCmd struct {
	Limit   int           `kong:"default='10',help='Number of players and recent games to show'"`
	Timeout time.Duration `kong:"default='5s',help='Timeout for reading history'"`

	RedisFlags `embed:""`
}

func (c *LeaderboardCmd) Run(logger *log.Logger) error {
	if c.RedisAddr == "" {
		return errors.New("--redis-addr (or PIG_REDIS_ADDR) is required for the leaderboard")
	}

	repos, err := c.openRepositories()
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.Close(); err != nil {
			logger.Error("Failed to close redis client", "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	board, err := repos.players.GetLeaderboard(ctx, &playerRepo.GetLeaderboardInput{
		Limit: c.Limit,
	})
	if err != nil {
		return fmt.Errorf("failed to load leaderboard: %w", err)
	}

	recent, err := repos.games.GetRecentGames(ctx, &gameRepo.GetRecentGamesInput{
		Limit: c.Limit,
	})
	if err != nil {
		return fmt.Errorf("failed to load recent games: %w", err)
	}
	logger.Debug("Loaded history", "players", len(board.Entries), "games", len(recent.Records))

	msgs, err := messaging.NewService(&messaging.ServiceConfig{})
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

	return cons.PrintLeaderboard(ctx, board, recent.Records)
}
