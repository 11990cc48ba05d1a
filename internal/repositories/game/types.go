package game

import "github.com/KirkDiggler/pig/internal/models"

type SaveGameInput struct {
	Record *models.GameRecord
}

type GetGameInput struct {
	GameID string
}

type GetRecentGamesInput struct {
	// Limit caps the number of records returned; 0 means DefaultRecentLimit
	Limit int
}

type GetRecentGamesOutput struct {
	Records []*models.GameRecord
}
