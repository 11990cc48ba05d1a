package models

// Player represents one participant at the table
type Player struct {
	// Name is the display name of the player, fixed once the game starts
	Name string

	// TotalPoints is the banked score across completed rounds
	TotalPoints int

	// RoundPoints is the unbanked score of the round in progress
	RoundPoints int
}

// NewPlayer creates a player with no points
func NewPlayer(name string) *Player {
	return &Player{
		Name: name,
	}
}
