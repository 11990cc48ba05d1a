package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusInProgress indicates players are still taking turns
	GameStatusInProgress GameStatus = "in_progress"

	// GameStatusWon indicates a player banked enough points to win
	GameStatusWon GameStatus = "won"

	// GameStatusAborted indicates a player quit before anyone won
	GameStatusAborted GameStatus = "aborted"
)

// IsInProgress reports whether commands may still be processed
func (s GameStatus) IsInProgress() bool {
	return s == GameStatusInProgress
}

// IsWon reports whether the game ended with a winner
func (s GameStatus) IsWon() bool {
	return s == GameStatusWon
}

// IsAborted reports whether the game was quit
func (s GameStatus) IsAborted() bool {
	return s == GameStatusAborted
}

// IsOver reports whether the game reached a terminal state
func (s GameStatus) IsOver() bool {
	return s.IsWon() || s.IsAborted()
}

// Game represents a single match of Pig
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Players is the fixed turn order
	Players []*Player

	// CurrentIndex points at the player whose turn it is
	CurrentIndex int

	// WinPoints is the banked total needed to win
	WinPoints int

	// Status is the current state of the game
	Status GameStatus

	// RollCount is the number of dice rolled so far
	RollCount int

	// StartedAt is when the game was created
	StartedAt time.Time

	// EndedAt is when the game reached a terminal state
	EndedAt time.Time
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() *Player {
	if len(g.Players) == 0 {
		return nil
	}
	return g.Players[g.CurrentIndex]
}

// IsWon reports whether the game ended with a winner
func (g *Game) IsWon() bool {
	return g.Status.IsWon()
}

// IsAborted reports whether the game was quit
func (g *Game) IsAborted() bool {
	return g.Status.IsAborted()
}
