package game

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Play runs a complete game: seat the players, loop over commands until
// somebody wins or quits, then announce and record the result.
func (s *service) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	names := input.PlayerNames
	if len(names) == 0 {
		var err error
		names, err = s.collectPlayerNames(ctx)
		if err != nil {
			return nil, err
		}
	}

	started, err := s.StartGame(ctx, &StartGameInput{
		PlayerNames: names,
	})
	if err != nil {
		return nil, err
	}
	game := started.Game

	s.console.PrintWelcome(ctx, game.WinPoints)

	for game.Status.IsInProgress() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		token, err := s.console.PromptCommand(ctx, game.CurrentPlayer().Name)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("failed to read command: %w", err)
			}

			// Nobody is left at the keyboard
			s.logger.Warn("input closed, aborting game", "game_id", game.ID)
			if _, err := s.QuitGame(ctx, &QuitGameInput{Game: game}); err != nil {
				return nil, err
			}
			break
		}

		output, err := s.HandleCommand(ctx, &HandleCommandInput{
			Game:    game,
			Command: token,
		})
		if errors.Is(err, ErrInvalidCommand) {
			s.logger.Debug("invalid command", "game_id", game.ID, "command", token)
			s.console.PrintInvalidCommand(ctx, token)
			s.console.PrintCommandsHelp(ctx)
			continue
		}
		if err != nil {
			return nil, err
		}

		switch {
		case output.Roll != nil:
			s.console.PrintRoundResult(ctx, output.Roll.Roll.Value, output.Roll.Roll.RoundPoints)
		case output.Bank != nil && !output.Bank.Won:
			s.console.PrintStatus(ctx, game.Players)
		}
	}

	if game.IsWon() {
		winner := game.CurrentPlayer()
		s.console.PrintGameOver(ctx, winner.Name, winner.TotalPoints+winner.RoundPoints)
	} else {
		s.console.PrintAborted(ctx)
	}

	ended, err := s.EndGame(ctx, &EndGameInput{Game: game})
	if err != nil {
		// History is best effort, the game itself finished fine
		s.logger.Warn("failed to record game", "game_id", game.ID, "error", err)
		return &PlayOutput{
			Game: game,
		}, nil
	}

	return &PlayOutput{
		Game:   game,
		Record: ended.Record,
	}, nil
}

func (s *service) collectPlayerNames(ctx context.Context) ([]string, error) {
	count, err := s.console.PromptPlayerCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read player count: %w", err)
	}
	if count < 1 {
		return nil, ErrNoPlayers
	}

	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		name, err := s.console.PromptPlayerName(ctx, i)
		if err != nil {
			return nil, fmt.Errorf("failed to read name of player %d: %w", i+1, err)
		}
		names = append(names, name)
	}

	return names, nil
}
