package models

import (
	"time"
)

// Roll represents a single throw of the die
type Roll struct {
	// Value is the face that came up
	Value int

	// PlayerName is the name of the player who rolled
	PlayerName string

	// RoundPoints is the roller's unbanked total after the roll
	RoundPoints int

	// Forfeited indicates the roll was a 1 and the round was lost
	Forfeited bool

	// Timestamp is when the roll was made
	Timestamp time.Time
}
