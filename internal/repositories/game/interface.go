package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/pig/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/pig/internal/models"
)

// Repository defines the interface for finished-game history
type Repository interface {
	// SaveGame persists the record of a finished game
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a finished game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.GameRecord, error)

	// GetRecentGames retrieves the most recently finished games, newest first
	GetRecentGames(ctx context.Context, input *GetRecentGamesInput) (*GetRecentGamesOutput, error)
}
