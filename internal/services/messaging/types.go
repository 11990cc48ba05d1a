package messaging

import (
	"github.com/KirkDiggler/pig/internal/models"
)

// PromptType represents what the console is about to read
type PromptType string

const (
	// PromptTypePlayerCount asks how many players will play
	PromptTypePlayerCount PromptType = "player_count"

	// PromptTypePlayerName asks for one player's name
	PromptTypePlayerName PromptType = "player_name"

	// PromptTypeCommand asks the current player for a command
	PromptTypeCommand PromptType = "command"
)

// GetWelcomeMessageInput contains parameters for the welcome banner
type GetWelcomeMessageInput struct {
	// WinPoints is the banked total needed to win
	WinPoints int
}

// GetWelcomeMessageOutput contains the welcome banner
type GetWelcomeMessageOutput struct {
	Title   string
	Message string
}

type GetCommandsMessageInput struct{}

type GetCommandsMessageOutput struct {
	Message string
}

type GetInvalidCommandMessageInput struct {
	// Command is the rejected token
	Command string
}

type GetInvalidCommandMessageOutput struct {
	Message string
}

type GetInvalidPlayerCountMessageInput struct {
	// Input is the rejected text
	Input string
}

type GetInvalidPlayerCountMessageOutput struct {
	Message string
}

// GetPromptMessageInput contains parameters for a keyboard prompt
type GetPromptMessageInput struct {
	Type PromptType

	// PlayerIndex is zero based and only used for PromptTypePlayerName
	PlayerIndex int

	// PlayerName is only used for PromptTypeCommand
	PlayerName string
}

type GetPromptMessageOutput struct {
	Message string
}

// GetRollResultMessageInput contains the input for GetRollResultMessage
type GetRollResultMessageInput struct {
	RollValue int

	// RoundPoints is the roller's unbanked total after the roll
	RoundPoints int
}

type GetRollResultMessageOutput struct {
	Message string

	// Forfeited is true when the roll lost the round
	Forfeited bool
}

type GetStatusMessageInput struct {
	Players []*models.Player
}

type GetStatusMessageOutput struct {
	Message string
}

// GetGameOverMessageInput contains the input for GetGameOverMessage
type GetGameOverMessageInput struct {
	Aborted bool

	// WinnerName and FinalScore are ignored for aborted games
	WinnerName string
	FinalScore int
}

type GetGameOverMessageOutput struct {
	Message string
}

// GetLeaderboardMessageInput contains the input for GetLeaderboardMessage
type GetLeaderboardMessageInput struct {
	// Rank is zero based
	Rank         int
	TotalPlayers int
	Stats        *models.PlayerStats
}

type GetLeaderboardMessageOutput struct {
	Message string
}

type GetRecentGameMessageInput struct {
	Record *models.GameRecord
}

type GetRecentGameMessageOutput struct {
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed picks the leaderboard quips; 0 seeds from the clock
	Seed int64
}
