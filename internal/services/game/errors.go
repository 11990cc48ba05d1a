package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidCommand   GameError = "invalid command"
	ErrGameOver         GameError = "game is already over"
	ErrInvalidGameState GameError = "invalid game state"
	ErrNoPlayers        GameError = "at least one player is required"
	ErrEmptyPlayerName  GameError = "player name cannot be empty"
	ErrInvalidWinPoints GameError = "win points must be positive"
	ErrNilInput         GameError = "input cannot be nil"
	ErrNilGame          GameError = "game cannot be nil"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilDiceRoller    GameError = "dice roller cannot be nil"
	ErrNilConsole       GameError = "console cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
)
