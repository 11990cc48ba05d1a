package messaging

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/pig/internal/models"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	svc Service
	ctx context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{Seed: 1})
	s.Require().NoError(err)
	s.svc = svc
	s.ctx = context.Background()
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestWelcomeMentionsWinPoints() {
	output, err := s.svc.GetWelcomeMessage(s.ctx, &GetWelcomeMessageInput{WinPoints: 20})
	s.Require().NoError(err)
	s.Equal("Welcome to PIG!", output.Title)
	s.Equal("First player to get 20 points will win!", output.Message)
}

func (s *MessagingServiceTestSuite) TestCommandsListsEveryCommand() {
	output, err := s.svc.GetCommandsMessage(s.ctx, &GetCommandsMessageInput{})
	s.Require().NoError(err)
	s.Contains(output.Message, "r = roll")
	s.Contains(output.Message, "n = next")
	s.Contains(output.Message, "q = quit")
}

func (s *MessagingServiceTestSuite) TestInvalidCommand() {
	output, err := s.svc.GetInvalidCommandMessage(s.ctx, &GetInvalidCommandMessageInput{Command: "x"})
	s.Require().NoError(err)
	s.Equal(`Invalid choice "x"!`, output.Message)

	output, err = s.svc.GetInvalidCommandMessage(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal("Invalid choice!", output.Message)
}

func (s *MessagingServiceTestSuite) TestPrompts() {
	output, err := s.svc.GetPromptMessage(s.ctx, &GetPromptMessageInput{Type: PromptTypePlayerCount})
	s.Require().NoError(err)
	s.Equal("Enter number of players > ", output.Message)

	output, err = s.svc.GetPromptMessage(s.ctx, &GetPromptMessageInput{Type: PromptTypePlayerName, PlayerIndex: 0})
	s.Require().NoError(err)
	s.Equal("Enter player 1's name > ", output.Message)

	output, err = s.svc.GetPromptMessage(s.ctx, &GetPromptMessageInput{Type: PromptTypeCommand, PlayerName: "Alice"})
	s.Require().NoError(err)
	s.Equal("Player is Alice > ", output.Message)

	_, err = s.svc.GetPromptMessage(s.ctx, &GetPromptMessageInput{Type: "bogus"})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestRollResultRunningTotal() {
	output, err := s.svc.GetRollResultMessage(s.ctx, &GetRollResultMessageInput{RollValue: 5, RoundPoints: 23})
	s.Require().NoError(err)
	s.False(output.Forfeited)
	s.Equal("Got 5, running total is 23", output.Message)
}

func (s *MessagingServiceTestSuite) TestRollResultLostItAll() {
	output, err := s.svc.GetRollResultMessage(s.ctx, &GetRollResultMessageInput{RollValue: 1})
	s.Require().NoError(err)
	s.True(output.Forfeited)
	s.Equal("Got 1, lost it all!", output.Message)
}

func (s *MessagingServiceTestSuite) TestStatusInRosterOrder() {
	output, err := s.svc.GetStatusMessage(s.ctx, &GetStatusMessageInput{
		Players: []*models.Player{
			{Name: "Bob", TotalPoints: 0},
			{Name: "Alice", TotalPoints: 18},
		},
	})
	s.Require().NoError(err)
	s.Equal("Points: Bob = 0 Alice = 18", output.Message)
}

func (s *MessagingServiceTestSuite) TestGameOver() {
	output, err := s.svc.GetGameOverMessage(s.ctx, &GetGameOverMessageInput{WinnerName: "Alice", FinalScore: 41})
	s.Require().NoError(err)
	s.Equal("Game over! Winner is player Alice with 41 points", output.Message)

	output, err = s.svc.GetGameOverMessage(s.ctx, &GetGameOverMessageInput{Aborted: true, WinnerName: "ignored"})
	s.Require().NoError(err)
	s.Equal("Aborted", output.Message)
}

func (s *MessagingServiceTestSuite) TestLeaderboardLine() {
	output, err := s.svc.GetLeaderboardMessage(s.ctx, &GetLeaderboardMessageInput{
		Rank:         1,
		TotalPlayers: 3,
		Stats: &models.PlayerStats{
			PlayerName:  "Bob",
			GamesPlayed: 4,
			Wins:        1,
			TotalPoints: 60,
		},
	})
	s.Require().NoError(err)
	s.Equal("2. Bob: 1 wins in 4 games (60 points banked)", output.Message)
}

func (s *MessagingServiceTestSuite) TestLeaderboardLeaderGetsQuip() {
	output, err := s.svc.GetLeaderboardMessage(s.ctx, &GetLeaderboardMessageInput{
		Rank:         0,
		TotalPlayers: 3,
		Stats:        &models.PlayerStats{PlayerName: "Alice", GamesPlayed: 2, Wins: 2, TotalPoints: 45},
	})
	s.Require().NoError(err)
	s.True(strings.HasPrefix(output.Message, "1. Alice: 2 wins in 2 games (45 points banked) "))
}

func (s *MessagingServiceTestSuite) TestLeaderboardNilStats() {
	_, err := s.svc.GetLeaderboardMessage(s.ctx, &GetLeaderboardMessageInput{})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestInvalidPlayerCount() {
	output, err := s.svc.GetInvalidPlayerCountMessage(s.ctx, &GetInvalidPlayerCountMessageInput{Input: "two"})
	s.Require().NoError(err)
	s.Equal(`"two" is not a number of players, need at least 1`, output.Message)
}

func (s *MessagingServiceTestSuite) TestRecentGame() {
	ended := time.Date(2025, 4, 19, 12, 30, 0, 0, time.UTC)

	output, err := s.svc.GetRecentGameMessage(s.ctx, &GetRecentGameMessageInput{
		Record: &models.GameRecord{
			ID:         "game-1",
			Status:     models.GameStatusWon,
			WinPoints:  20,
			WinnerName: "Alice",
			FinalScore: 23,
			Standings: []models.Standing{
				{PlayerName: "Alice", TotalPoints: 23},
				{PlayerName: "Bob", TotalPoints: 12},
			},
			RollCount: 9,
			EndedAt:   ended,
		},
	})
	s.Require().NoError(err)
	s.Equal("2025-04-19 12:30 Alice won with 23 points (2 players, 9 rolls, playing to 20)", output.Message)

	output, err = s.svc.GetRecentGameMessage(s.ctx, &GetRecentGameMessageInput{
		Record: &models.GameRecord{
			Status:    models.GameStatusAborted,
			WinPoints: 20,
			Standings: []models.Standing{{PlayerName: "Alice"}},
			EndedAt:   ended,
		},
	})
	s.Require().NoError(err)
	s.Equal("2025-04-19 12:30 aborted (1 players, 0 rolls, playing to 20)", output.Message)
}

func (s *MessagingServiceTestSuite) TestRecentGameNilRecord() {
	_, err := s.svc.GetRecentGameMessage(s.ctx, &GetRecentGameMessageInput{})
	s.Error(err)
}
