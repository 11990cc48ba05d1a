package game

import (
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/KirkDiggler/pig/internal/common/uuid"
	"github.com/KirkDiggler/pig/internal/dice"
	"github.com/KirkDiggler/pig/internal/models"
	gameRepo "github.com/KirkDiggler/pig/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/pig/internal/repositories/player"
)

// DefaultWinPoints is the banked total needed to win when none is configured
const DefaultWinPoints = 20

// Command is a recognised player command
type Command string

const (
	// CommandRoll rolls the die for the current player
	CommandRoll Command = "roll"

	// CommandNext banks the round and passes the turn
	CommandNext Command = "next"

	// CommandQuit aborts the game
	CommandQuit Command = "quit"
)

// commandTokens maps keyboard input to commands. Matching is case-sensitive.
var commandTokens = map[string]Command{
	"r":    CommandRoll,
	"roll": CommandRoll,
	"n":    CommandNext,
	"next": CommandNext,
	"q":    CommandQuit,
	"quit": CommandQuit,
}

// ParseCommand maps a raw token to a Command
func ParseCommand(token string) (Command, error) {
	cmd, ok := commandTokens[token]
	if !ok {
		return "", ErrInvalidCommand
	}
	return cmd, nil
}

// Config holds configuration for the game service
type Config struct {
	// Banked total needed to win, DefaultWinPoints when zero
	WinPoints int

	// Optional history repositories, nothing is recorded when nil
	GameRepo   gameRepo.Repository
	PlayerRepo playerRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Console       Console
	Clock         quartz.Clock
	UUIDGenerator uuid.UUID

	// Logger defaults to log.Default()
	Logger *log.Logger
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	// PlayerNames in turn order
	PlayerNames []string
}

// StartGameOutput contains the freshly started game
type StartGameOutput struct {
	Game *models.Game

	// StartingPlayer is the randomly chosen first player
	StartingPlayer *models.Player
}

// RollDiceInput contains parameters for rolling dice
type RollDiceInput struct {
	Game *models.Game
}

// RollDiceOutput contains the result of rolling dice
type RollDiceOutput struct {
	Roll *models.Roll

	// CurrentPlayer is whose turn it is after the roll
	CurrentPlayer *models.Player

	// TurnAdvanced is true when the roll forfeited the round
	TurnAdvanced bool
}

// BankRoundInput contains parameters for banking a round
type BankRoundInput struct {
	Game *models.Game
}

// BankRoundOutput contains the result of banking a round
type BankRoundOutput struct {
	PlayerName string

	// Banked is the number of round points moved into the total
	Banked int

	// TotalPoints is the banker's total after banking
	TotalPoints int

	// Won indicates the banker reached the win threshold
	Won bool

	// CurrentPlayer is the next player, or the winner when Won is set
	CurrentPlayer *models.Player
}

type QuitGameInput struct {
	Game *models.Game
}

type QuitGameOutput struct {
	// DiscardedPoints is the unbanked round that was thrown away
	DiscardedPoints int
}

// HandleCommandInput contains a raw command for the current player
type HandleCommandInput struct {
	Game    *models.Game
	Command string
}

// HandleCommandOutput contains the result of whichever command ran.
// Exactly one of Roll, Bank and Quit is set.
type HandleCommandOutput struct {
	Command Command
	Roll    *RollDiceOutput
	Bank    *BankRoundOutput
	Quit    *QuitGameOutput
}

type EndGameInput struct {
	Game *models.Game
}

type EndGameOutput struct {
	Record *models.GameRecord
}

// PlayInput contains parameters for running a game on the console
type PlayInput struct {
	// PlayerNames skips the setup prompts when set
	PlayerNames []string
}

// PlayOutput contains the finished game
type PlayOutput struct {
	Game *models.Game

	// Record is nil when the history could not be written
	Record *models.GameRecord
}
