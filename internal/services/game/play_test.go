package game

import (
	"context"
	"errors"
	"io"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pig/internal/models"
)

func (s *GameServiceTestSuite) expectSetup(names ...string) {
	calls := []any{
		s.mockConsole.EXPECT().PromptPlayerCount(gomock.Any()).Return(len(names), nil),
	}
	for i, name := range names {
		calls = append(calls, s.mockConsole.EXPECT().PromptPlayerName(gomock.Any(), i).Return(name, nil))
	}
	gomock.InOrder(calls...)
}

func (s *GameServiceTestSuite) TestPlay_TwoPlayerWin() {
	s.expectSetup("A", "B")

	gomock.InOrder(
		s.mockDiceRoller.EXPECT().Intn(2).Return(0),
		s.mockConsole.EXPECT().PrintWelcome(gomock.Any(), 20),

		// A: 6, 6, 6 then bank
		s.mockConsole.EXPECT().PromptCommand(gomock.Any(), "A").Return("r", nil),
		s.mockDiceRoller.EXPECT().Roll(6).Return(6),
		s.mockConsole.EXPECT().PrintRoundResult(gomock.Any(), 6, 6),
		s.mockConsole.EXPECT().PromptCommand(gomock.Any(), "A").Return("r", nil),
		s.mockDiceRoller.EXPECT().Roll(6).Return(6),
		s.mockConsole.EXPECT().PrintRoundResult(gomock.Any(), 6, 12),
		s.mockConsole.EXPECT().PromptCommand(gomock.Any(), "A").Return("r", nil),
		s.mockDiceRoller.EXPECT().Roll(6).Return(6),
		s.mockConsole.EXPECT().PrintRoundResult(gomock.Any(), 6, 18),
		s.mockConsole.EXPECT().PromptCommand(gomock.Any(), "A").Return("n", nil),
		s.mockConsole.EXPECT().PrintStatus(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, players []*models.Player) {
				s.Equal(18, players[0].TotalPoints)
				s.Equal(0, players[1].TotalPoints)
			}),

		// B: 1
		s.mockConsole.EXPECT().PromptCommand(gomock.Any(), "B").Return("r", nil),
		s.mockDiceRoller.EXPECT().Roll(6).Return(1),
		s.mockConsole.EXPECT().PrintRoundResult(gomock.Any(), 1, 0),

		// A: 6, 6, 6, 5 then bank for the win
		s.mockConsole.EXPECT().PromptCommand(gomock.Any(), "A").Return("r", nil),
		s.mockDiceRoller.EXPECT().Roll(6).Return(6),
		s.mockConsole.EXPECT().PrintRoundResult(gomock.Any(), 6, 6),
		s.mockConsole.EXPECT().PromptCommand(gomock.Any(), "A").Return("r", nil),
		s.mockDiceRoller.EXPECT().Roll(6).Return(6),
		s.mockConsole.EXPECT().PrintRoundResult(gomock.Any(), 6, 12),
		s.mockConsole.EXPECT().PromptCommand(gomock.Any(), "A").Return("r", nil),
		s.mockDiceRoller.EXPECT().Roll(6).Return(6),
		s.mockConsole.EXPECT().PrintRoundResult(gomock.Any(), 6, 18),
		s.mockConsole.EXPECT().PromptCommand(gomock.Any(), "A").Return("r", nil),
		s.mockDiceRoller.EXPECT().Roll(6).Return(5),
		s.mockConsole.EXPECT().PrintRoundResult(gomock.Any(), 5, 23),
		s.mockConsole.EXPECT().PromptCommand(gomock.Any(), "A").Return("n", nil),
		s.mockConsole.EXPECT().PrintGameOver(gomock.Any(), "A", 41),
	)

	output, err := s.gameService.Play(s.ctx, &PlayInput{})
	s.Require().NoError(err)

	s.True(output.Game.IsWon())
	s.Equal(41, output.Game.Players[0].TotalPoints)
	s.Require().NotNil(output.Record)
	s.Equal("A", output.Record.WinnerName)
	s.Equal(41, output.Record.FinalScore)
	s.Equal(8, output.Record.RollCount)
}

func (s *GameServiceTestSuite) TestPlay_QuitBeforeAnyRoll() {
	gomock.InOrder(
		s.mockDiceRoller.EXPECT().Intn(2).Return(1),
		s.mockConsole.EXPECT().PrintWelcome(gomock.Any(), 20),
		s.mockConsole.EXPECT().PromptCommand(gomock.Any(), "B").Return("q", nil),
		s.mockConsole.EXPECT().PrintAborted(gomock.Any()),
	)

	output, err := s.gameService.Play(s.ctx, &PlayInput{PlayerNames: []string{"A", "B"}})
	s.Require().NoError(err)

	s.True(output.Game.IsAborted())
	for _, player := range output.Game.Players {
		s.Zero(player.TotalPoints)
		s.Zero(player.RoundPoints)
	}
}

func (s *GameServiceTestSuite) TestPlay_InvalidCommandReprompts() {
	gomock.InOrder(
		s.mockDiceRoller.EXPECT().Intn(2).Return(0),
		s.mockConsole.EXPECT().PrintWelcome(gomock.Any(), 20),
		s.mockConsole.EXPECT().PromptCommand(gomock.Any(), "A").Return("r", nil),
		s.mockDiceRoller.EXPECT().Roll(6).Return(4),
		s.mockConsole.EXPECT().PrintRoundResult(gomock.Any(), 4, 4),
		s.mockConsole.EXPECT().PromptCommand(gomock.Any(), "A").Return("x", nil),
		s.mockConsole.EXPECT().PrintInvalidCommand(gomock.Any(), "x"),
		s.mockConsole.EXPECT().PrintCommandsHelp(gomock.Any()),
		// same player is asked again with the round intact
		s.mockConsole.EXPECT().PromptCommand(gomock.Any(), "A").Return("q", nil),
		s.mockConsole.EXPECT().PrintAborted(gomock.Any()),
	)

	output, err := s.gameService.Play(s.ctx, &PlayInput{PlayerNames: []string{"A", "B"}})
	s.Require().NoError(err)
	s.True(output.Game.IsAborted())
	s.Equal(1, output.Game.RollCount)
}

func (s *GameServiceTestSuite) TestPlay_EndOfInputAborts() {
	gomock.InOrder(
		s.mockDiceRoller.EXPECT().Intn(1).Return(0),
		s.mockConsole.EXPECT().PrintWelcome(gomock.Any(), 20),
		s.mockConsole.EXPECT().PromptCommand(gomock.Any(), "Solo").Return("", io.EOF),
		s.mockConsole.EXPECT().PrintAborted(gomock.Any()),
	)

	output, err := s.gameService.Play(s.ctx, &PlayInput{PlayerNames: []string{"Solo"}})
	s.Require().NoError(err)
	s.True(output.Game.IsAborted())
}

func (s *GameServiceTestSuite) TestPlay_ReadErrorFails() {
	readErr := errors.New("terminal gone")

	gomock.InOrder(
		s.mockDiceRoller.EXPECT().Intn(1).Return(0),
		s.mockConsole.EXPECT().PrintWelcome(gomock.Any(), 20),
		s.mockConsole.EXPECT().PromptCommand(gomock.Any(), "Solo").Return("", readErr),
	)

	output, err := s.gameService.Play(s.ctx, &PlayInput{PlayerNames: []string{"Solo"}})
	s.ErrorIs(err, readErr)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestPlay_SetupError() {
	s.mockConsole.EXPECT().PromptPlayerCount(gomock.Any()).Return(0, io.EOF)

	output, err := s.gameService.Play(s.ctx, &PlayInput{})
	s.ErrorIs(err, io.EOF)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestPlay_CancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	gomock.InOrder(
		s.mockDiceRoller.EXPECT().Intn(1).Return(0),
		s.mockConsole.EXPECT().PrintWelcome(gomock.Any(), 20),
	)

	output, err := s.gameService.Play(ctx, &PlayInput{PlayerNames: []string{"Solo"}})
	s.ErrorIs(err, context.Canceled)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestPlay_HistoryFailureIsNotFatal() {
	s.gameService = s.newService(s.mockGameRepo, s.mockPlayerRepo)

	gomock.InOrder(
		s.mockDiceRoller.EXPECT().Intn(1).Return(0),
		s.mockConsole.EXPECT().PrintWelcome(gomock.Any(), 20),
		s.mockConsole.EXPECT().PromptCommand(gomock.Any(), "Solo").Return("quit", nil),
		s.mockConsole.EXPECT().PrintAborted(gomock.Any()),
		s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(errors.New("redis down")),
	)

	output, err := s.gameService.Play(s.ctx, &PlayInput{PlayerNames: []string{"Solo"}})
	s.Require().NoError(err)
	s.True(output.Game.IsAborted())
	s.Nil(output.Record)
}

func (s *GameServiceTestSuite) TestPlay_SinglePlayerWins() {
	calls := []any{
		s.mockDiceRoller.EXPECT().Intn(1).Return(0),
		s.mockConsole.EXPECT().PrintWelcome(gomock.Any(), 20),
		s.mockConsole.EXPECT().PromptCommand(gomock.Any(), "Solo").Return("roll", nil),
		s.mockDiceRoller.EXPECT().Roll(6).Return(1),
		// the turn wraps back to the only player
		s.mockConsole.EXPECT().PrintRoundResult(gomock.Any(), 1, 0),
		s.mockConsole.EXPECT().PromptCommand(gomock.Any(), "Solo").Return("next", nil),
		s.mockConsole.EXPECT().PrintStatus(gomock.Any(), gomock.Any()),
	}
	for i := 1; i <= 4; i++ {
		calls = append(calls,
			s.mockConsole.EXPECT().PromptCommand(gomock.Any(), "Solo").Return("r", nil),
			s.mockDiceRoller.EXPECT().Roll(6).Return(5),
			s.mockConsole.EXPECT().PrintRoundResult(gomock.Any(), 5, i*5),
		)
	}
	calls = append(calls,
		s.mockConsole.EXPECT().PromptCommand(gomock.Any(), "Solo").Return("n", nil),
		s.mockConsole.EXPECT().PrintGameOver(gomock.Any(), "Solo", 20),
	)
	gomock.InOrder(calls...)

	output, err := s.gameService.Play(s.ctx, &PlayInput{PlayerNames: []string{"Solo"}})
	s.Require().NoError(err)
	s.True(output.Game.IsWon())
	s.Equal(20, output.Game.Players[0].TotalPoints)
}

func (s *GameServiceTestSuite) TestPlay_EmptyPlayerName() {
	output, err := s.gameService.Play(s.ctx, &PlayInput{PlayerNames: []string{"A", ""}})
	s.ErrorIs(err, ErrEmptyPlayerName)
	s.Nil(output)
}
