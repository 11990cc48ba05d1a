package game

import (
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pig/internal/models"
	gameRepo "github.com/KirkDiggler/pig/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/pig/internal/repositories/player"
)

// newRedisHistory backs the service with real repositories over miniredis
func (s *GameServiceTestSuite) newRedisHistory() (gameRepo.Repository, playerRepo.Repository) {
	mr := miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	s.T().Cleanup(func() {
		_ = client.Close()
	})

	games, err := gameRepo.NewRedis(&gameRepo.Config{RedisClient: client})
	s.Require().NoError(err)

	players, err := playerRepo.NewRedis(&playerRepo.Config{RedisClient: client})
	s.Require().NoError(err)

	return games, players
}

func (s *GameServiceTestSuite) TestEndGame_SharedNameCountsOneGame() {
	games, players := s.newRedisHistory()
	s.gameService = s.newService(games, players)

	game := newTestGame(20, "Sam", "Sam", "Ann")
	game.Status = models.GameStatusWon
	game.CurrentIndex = 1
	game.Players[0].TotalPoints = 9
	game.Players[1].TotalPoints = 21
	game.Players[2].TotalPoints = 14

	_, err := s.gameService.EndGame(s.ctx, &EndGameInput{Game: game})
	s.Require().NoError(err)

	sam, err := players.GetPlayerStats(s.ctx, &playerRepo.GetPlayerStatsInput{PlayerName: "Sam"})
	s.Require().NoError(err)
	s.Equal(1, sam.GamesPlayed)
	s.Equal(1, sam.Wins)
	s.Equal(21, sam.TotalPoints)

	ann, err := players.GetPlayerStats(s.ctx, &playerRepo.GetPlayerStatsInput{PlayerName: "Ann"})
	s.Require().NoError(err)
	s.Equal(1, ann.GamesPlayed)
	s.Zero(ann.Wins)
	s.Equal(14, ann.TotalPoints)

	record, err := games.GetGame(s.ctx, &gameRepo.GetGameInput{GameID: game.ID})
	s.Require().NoError(err)
	s.Len(record.Standings, 3)
}

func (s *GameServiceTestSuite) TestEndGame_SharedNameAbortedGame() {
	games, players := s.newRedisHistory()
	s.gameService = s.newService(games, players)

	game := newTestGame(20, "Sam", "Sam")
	game.Status = models.GameStatusAborted
	game.Players[0].TotalPoints = 4
	game.Players[1].TotalPoints = 11

	_, err := s.gameService.EndGame(s.ctx, &EndGameInput{Game: game})
	s.Require().NoError(err)

	sam, err := players.GetPlayerStats(s.ctx, &playerRepo.GetPlayerStatsInput{PlayerName: "Sam"})
	s.Require().NoError(err)
	s.Equal(1, sam.GamesPlayed)
	s.Zero(sam.Wins)
	s.Equal(11, sam.TotalPoints)
}
