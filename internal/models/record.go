package models

import (
	"time"
)

// Standing is one player's banked total at the end of a game
type Standing struct {
	PlayerName  string
	TotalPoints int
}

// GameRecord is the history entry written once a game is over
type GameRecord struct {
	// ID matches the ID of the finished game
	ID string

	// Status is either won or aborted
	Status GameStatus

	// WinPoints is the threshold the game was played to
	WinPoints int

	// WinnerName is empty for aborted games
	WinnerName string

	// FinalScore is the winner's banked total
	FinalScore int

	// Standings lists every player in turn order
	Standings []Standing

	// RollCount is the number of dice rolled during the game
	RollCount int

	StartedAt time.Time
	EndedAt   time.Time
}
