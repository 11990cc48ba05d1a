package models

// PlayerStats represents a player's results across finished games
type PlayerStats struct {
	// PlayerName is the display name the stats are keyed by
	PlayerName string

	// GamesPlayed is the number of finished games the player took part in
	GamesPlayed int

	// Wins is the number of games the player won
	Wins int

	// TotalPoints is the sum of banked points over all games
	TotalPoints int
}

// Leaderboard represents players ordered by wins
type Leaderboard struct {
	// Entries is sorted by wins, most first
	Entries []*PlayerStats
}
