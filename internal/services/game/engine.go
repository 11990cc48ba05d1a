package game

import (
	"github.com/KirkDiggler/pig/internal/dice"
	"github.com/KirkDiggler/pig/internal/models"
)

// applyRoll adds a die value to the current player's round. A 1 wipes the
// round and passes the turn. Returns whoever is current afterwards.
func applyRoll(game *models.Game, value int) *models.Player {
	current := game.CurrentPlayer()
	if value == 1 {
		current.RoundPoints = 0
		advanceTurn(game)
		return game.CurrentPlayer()
	}

	current.RoundPoints += value
	return current
}

// bankRound moves the current player's round points into their total. The
// turn only passes when the banker has not won.
func bankRound(game *models.Game) (banked int, won bool) {
	current := game.CurrentPlayer()
	banked = current.RoundPoints
	current.TotalPoints += banked
	current.RoundPoints = 0

	if checkWin(game) {
		game.Status = models.GameStatusWon
		return banked, true
	}

	advanceTurn(game)
	return banked, false
}

// advanceTurn moves to the next seat, wrapping after the last one
func advanceTurn(game *models.Game) {
	game.CurrentIndex = (game.CurrentIndex + 1) % len(game.Players)
}

// checkWin only looks at the current player. Banking is the only way totals
// change, so nobody else can have crossed the line since their own bank.
func checkWin(game *models.Game) bool {
	return game.CurrentPlayer().TotalPoints >= game.WinPoints
}

// selectStartingPlayer picks any seat in [0, len(players)) with equal odds.
// players must not be empty.
func selectStartingPlayer(roller dice.Roller, players []*models.Player) int {
	return roller.Intn(len(players))
}
