package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetWelcomeMessage returns the banner shown once the players are seated
	GetWelcomeMessage(ctx context.Context, input *GetWelcomeMessageInput) (*GetWelcomeMessageOutput, error)

	// GetCommandsMessage returns the list of recognised commands
	GetCommandsMessage(ctx context.Context, input *GetCommandsMessageInput) (*GetCommandsMessageOutput, error)

	// GetInvalidCommandMessage returns the message for unrecognised input
	GetInvalidCommandMessage(ctx context.Context, input *GetInvalidCommandMessageInput) (*GetInvalidCommandMessageOutput, error)

	// GetInvalidPlayerCountMessage returns the message for a bad player count
	GetInvalidPlayerCountMessage(ctx context.Context, input *GetInvalidPlayerCountMessageInput) (*GetInvalidPlayerCountMessageOutput, error)

	// GetPromptMessage returns the text shown before reading from the keyboard
	GetPromptMessage(ctx context.Context, input *GetPromptMessageInput) (*GetPromptMessageOutput, error)

	// GetRollResultMessage returns the outcome of a single roll
	GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error)

	// GetStatusMessage returns every player's banked total
	GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error)

	// GetGameOverMessage returns the final message of a game, won or aborted
	GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error)

	// GetLeaderboardMessage returns one line of the all-time leaderboard
	GetLeaderboardMessage(ctx context.Context, input *GetLeaderboardMessageInput) (*GetLeaderboardMessageOutput, error)

	// GetRecentGameMessage returns a one line summary of a finished game
	GetRecentGameMessage(ctx context.Context, input *GetRecentGameMessageInput) (*GetRecentGameMessageOutput, error)
}
