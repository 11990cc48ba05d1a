package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/pig/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/pig/internal/models"
)

// Repository defines the interface for per-player history
type Repository interface {
	// RecordResult adds one finished game to a player's stats
	RecordResult(ctx context.Context, input *RecordResultInput) error

	// GetPlayerStats retrieves a player's stats by name
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*models.PlayerStats, error)

	// GetLeaderboard retrieves players ordered by wins
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*models.Leaderboard, error)
}
