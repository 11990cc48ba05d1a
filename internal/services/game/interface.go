package game

//go:generate mockgen -package=mocks -destination=mocks/mock_console.go github.com/KirkDiggler/pig/internal/services/game Console

import (
	"context"

	"github.com/KirkDiggler/pig/internal/models"
)

// Service defines the interface for game operations
type Service interface {
	// StartGame seats the players and picks who goes first
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// RollDice rolls for the current player
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// BankRound commits the current player's round points and checks for a win
	BankRound(ctx context.Context, input *BankRoundInput) (*BankRoundOutput, error)

	// QuitGame aborts the game
	QuitGame(ctx context.Context, input *QuitGameInput) (*QuitGameOutput, error)

	// HandleCommand dispatches a raw player command
	HandleCommand(ctx context.Context, input *HandleCommandInput) (*HandleCommandOutput, error)

	// EndGame stamps a finished game and records it in the history
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)

	// Play runs a whole game against the console
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)
}

// Console is everything the game needs from the keyboard and screen
type Console interface {
	// PromptPlayerCount reads the number of players, always at least 1
	PromptPlayerCount(ctx context.Context) (int, error)

	// PromptPlayerName reads the name of the player at a zero based index
	PromptPlayerName(ctx context.Context, index int) (string, error)

	// PromptCommand reads the next raw command of the named player
	PromptCommand(ctx context.Context, playerName string) (string, error)

	// PrintWelcome announces the game and the points needed to win
	PrintWelcome(ctx context.Context, winPoints int)

	// PrintCommandsHelp lists the accepted commands
	PrintCommandsHelp(ctx context.Context)

	// PrintInvalidCommand reports a rejected command token
	PrintInvalidCommand(ctx context.Context, command string)

	// PrintRoundResult shows the die and the roller's round points after it
	PrintRoundResult(ctx context.Context, diceValue, roundPoints int)

	// PrintStatus shows every banked total in turn order
	PrintStatus(ctx context.Context, players []*models.Player)

	// PrintGameOver names the winner and their final score
	PrintGameOver(ctx context.Context, winnerName string, finalScore int)

	// PrintAborted reports that a player quit before anyone won
	PrintAborted(ctx context.Context)
}
