package player

// RecordResultInput contains one player's outcome of a finished game
type RecordResultInput struct {
	PlayerName string

	// Won is true only for the winner of a won game
	Won bool

	// Points is the player's banked total when the game ended
	Points int
}

type GetPlayerStatsInput struct {
	PlayerName string
}

type GetLeaderboardInput struct {
	// Limit caps the number of entries; 0 means DefaultLeaderboardLimit
	Limit int
}
