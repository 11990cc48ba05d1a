package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const (
	commandsHelp = "Commands are: r = roll, n = next, q = quit"

	recentGameTimeFormat = "2006-01-02 15:04"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting leaderboard quips
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetWelcomeMessage returns the banner shown once the players are seated
func (s *service) GetWelcomeMessage(ctx context.Context, input *GetWelcomeMessageInput) (*GetWelcomeMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetWelcomeMessageOutput{
		Title:   "Welcome to PIG!",
		Message: fmt.Sprintf("First player to get %d points will win!", input.WinPoints),
	}, nil
}

// GetCommandsMessage returns the list of recognised commands
func (s *service) GetCommandsMessage(ctx context.Context, input *GetCommandsMessageInput) (*GetCommandsMessageOutput, error) {
	return &GetCommandsMessageOutput{
		Message: commandsHelp,
	}, nil
}

// GetInvalidCommandMessage returns the message for unrecognised input
func (s *service) GetInvalidCommandMessage(ctx context.Context, input *GetInvalidCommandMessageInput) (*GetInvalidCommandMessageOutput, error) {
	if input == nil || input.Command == "" {
		return &GetInvalidCommandMessageOutput{
			Message: "Invalid choice!",
		}, nil
	}

	return &GetInvalidCommandMessageOutput{
		Message: fmt.Sprintf("Invalid choice %q!", input.Command),
	}, nil
}

// GetInvalidPlayerCountMessage returns the message for a bad player count
func (s *service) GetInvalidPlayerCountMessage(ctx context.Context, input *GetInvalidPlayerCountMessageInput) (*GetInvalidPlayerCountMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetInvalidPlayerCountMessageOutput{
		Message: fmt.Sprintf("%q is not a number of players, need at least 1", input.Input),
	}, nil
}

// GetPromptMessage returns the text shown before reading from the keyboard
func (s *service) GetPromptMessage(ctx context.Context, input *GetPromptMessageInput) (*GetPromptMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var message string
	switch input.Type {
	case PromptTypePlayerCount:
		message = "Enter number of players > "
	case PromptTypePlayerName:
		message = fmt.Sprintf("Enter player %d's name > ", input.PlayerIndex+1)
	case PromptTypeCommand:
		message = fmt.Sprintf("Player is %s > ", input.PlayerName)
	default:
		return nil, fmt.Errorf("unknown prompt type %q", input.Type)
	}

	return &GetPromptMessageOutput{
		Message: message,
	}, nil
}

// GetRollResultMessage returns the outcome of a single roll
func (s *service) GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.RollValue == 1 {
		return &GetRollResultMessageOutput{
			Message:   "Got 1, lost it all!",
			Forfeited: true,
		}, nil
	}

	return &GetRollResultMessageOutput{
		Message: fmt.Sprintf("Got %d, running total is %d", input.RollValue, input.RoundPoints),
	}, nil
}

// GetStatusMessage returns every player's banked total in turn order
func (s *service) GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	parts := make([]string, 0, len(input.Players))
	for _, player := range input.Players {
		parts = append(parts, fmt.Sprintf("%s = %d", player.Name, player.TotalPoints))
	}

	return &GetStatusMessageOutput{
		Message: "Points: " + strings.Join(parts, " "),
	}, nil
}

// GetGameOverMessage returns the final message of a game
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Aborted {
		return &GetGameOverMessageOutput{
			Message: "Aborted",
		}, nil
	}

	return &GetGameOverMessageOutput{
		Message: fmt.Sprintf("Game over! Winner is player %s with %d points", input.WinnerName, input.FinalScore),
	}, nil
}

// GetLeaderboardMessage returns a ranked line with a quip for a player
func (s *service) GetLeaderboardMessage(ctx context.Context, input *GetLeaderboardMessageInput) (*GetLeaderboardMessageOutput, error) {
	if input == nil || input.Stats == nil {
		return nil, errors.New("input and stats cannot be nil")
	}

	stats := input.Stats
	line := fmt.Sprintf("%d. %s: %d wins in %d games (%d points banked)",
		input.Rank+1, stats.PlayerName, stats.Wins, stats.GamesPlayed, stats.TotalPoints)

	var quips []string
	if input.Rank == 0 && stats.Wins > 0 {
		quips = []string{
			"Hog of the year.",
			"Knows exactly when to stop rolling.",
			"The dice fear this one.",
		}
	} else if input.TotalPlayers > 1 && input.Rank == input.TotalPlayers-1 {
		quips = []string{
			"Just one more roll, right?",
			"Has met the 1 many, many times.",
			"Still looking for the bank button.",
		}
	}

	if len(quips) > 0 {
		line = fmt.Sprintf("%s %s", line, quips[s.rand.Intn(len(quips))])
	}

	return &GetLeaderboardMessageOutput{
		Message: line,
	}, nil
}

// GetRecentGameMessage returns a one line summary of a finished game
func (s *service) GetRecentGameMessage(ctx context.Context, input *GetRecentGameMessageInput) (*GetRecentGameMessageOutput, error) {
	if input == nil || input.Record == nil {
		return nil, errors.New("input and record cannot be nil")
	}

	record := input.Record
	when := record.EndedAt.Format(recentGameTimeFormat)

	var outcome string
	if record.Status.IsWon() {
		outcome = fmt.Sprintf("%s won with %d points", record.WinnerName, record.FinalScore)
	} else {
		outcome = "aborted"
	}

	return &GetRecentGameMessageOutput{
		Message: fmt.Sprintf("%s %s (%d players, %d rolls, playing to %d)",
			when, outcome, len(record.Standings), record.RollCount, record.WinPoints),
	}, nil
}
