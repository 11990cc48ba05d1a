package console

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/pig/internal/models"
	"github.com/KirkDiggler/pig/internal/services/messaging"
)

// Styles contains styling for console output
type Styles struct {
	Title     lipgloss.Style
	Info      lipgloss.Style
	Prompt    lipgloss.Style
	Roll      lipgloss.Style
	Forfeit   lipgloss.Style
	Status    lipgloss.Style
	Winner    lipgloss.Style
	Error     lipgloss.Style
	Separator lipgloss.Style
}

// NewStyles creates styles bound to a renderer. A renderer over a
// non-terminal writer drops all colors.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")),
		Roll: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Forfeit: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Status: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Winner: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Separator: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// PrintWelcome prints the banner and the command list
func (c *Console) PrintWelcome(ctx context.Context, winPoints int) {
	output, err := c.messaging.GetWelcomeMessage(ctx, &messaging.GetWelcomeMessageInput{
		WinPoints: winPoints,
	})
	if err != nil {
		c.logger.Warn("failed to build welcome message", "error", err)
		return
	}

	c.println(c.styles.Title.Render(output.Title))
	c.println(c.styles.Info.Render(output.Message))
	c.PrintCommandsHelp(ctx)
}

func (c *Console) PrintCommandsHelp(ctx context.Context) {
	output, err := c.messaging.GetCommandsMessage(ctx, &messaging.GetCommandsMessageInput{})
	if err != nil {
		c.logger.Warn("failed to build commands message", "error", err)
		return
	}

	c.println(c.styles.Info.Render(output.Message))
}

func (c *Console) PrintInvalidCommand(ctx context.Context, command string) {
	output, err := c.messaging.GetInvalidCommandMessage(ctx, &messaging.GetInvalidCommandMessageInput{
		Command: command,
	})
	if err != nil {
		c.logger.Warn("failed to build invalid command message", "error", err)
		return
	}

	c.println(c.styles.Error.Render(output.Message))
}

// PrintRoundResult prints the die and the roller's running total
func (c *Console) PrintRoundResult(ctx context.Context, diceValue, roundPoints int) {
	output, err := c.messaging.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
		RollValue:   diceValue,
		RoundPoints: roundPoints,
	})
	if err != nil {
		c.logger.Warn("failed to build roll message", "error", err)
		return
	}

	if output.Forfeited {
		c.println(c.styles.Forfeit.Render(output.Message))
		return
	}
	c.println(c.styles.Roll.Render(output.Message))
}

// PrintStatus prints every banked total in turn order
func (c *Console) PrintStatus(ctx context.Context, players []*models.Player) {
	output, err := c.messaging.GetStatusMessage(ctx, &messaging.GetStatusMessageInput{
		Players: players,
	})
	if err != nil {
		c.logger.Warn("failed to build status message", "error", err)
		return
	}

	c.println(c.styles.Status.Render(output.Message))
}

func (c *Console) PrintGameOver(ctx context.Context, winnerName string, finalScore int) {
	c.printGameOver(ctx, &messaging.GetGameOverMessageInput{
		WinnerName: winnerName,
		FinalScore: finalScore,
	})
}

func (c *Console) PrintAborted(ctx context.Context) {
	c.printGameOver(ctx, &messaging.GetGameOverMessageInput{
		Aborted: true,
	})
}

func (c *Console) printGameOver(ctx context.Context, input *messaging.GetGameOverMessageInput) {
	output, err := c.messaging.GetGameOverMessage(ctx, input)
	if err != nil {
		c.logger.Warn("failed to build game over message", "error", err)
		return
	}

	if input.Aborted {
		c.println(c.styles.Error.Render(output.Message))
		return
	}
	c.println(c.styles.Winner.Render(output.Message))
}

// PrintLeaderboard prints the ranked players followed by the latest games
func (c *Console) PrintLeaderboard(ctx context.Context, board *models.Leaderboard, recent []*models.GameRecord) error {
	c.println(c.styles.Title.Render("Leaderboard"))

	if board == nil || len(board.Entries) == 0 {
		c.println(c.styles.Info.Render("No games recorded yet"))
	} else {
		for rank, stats := range board.Entries {
			output, err := c.messaging.GetLeaderboardMessage(ctx, &messaging.GetLeaderboardMessageInput{
				Rank:         rank,
				TotalPlayers: len(board.Entries),
				Stats:        stats,
			})
			if err != nil {
				return err
			}

			if rank == 0 && stats.Wins > 0 {
				c.println(c.styles.Winner.Render(output.Message))
				continue
			}
			c.println(output.Message)
		}
	}

	if len(recent) == 0 {
		return nil
	}

	c.println(c.styles.Separator.Render(strings.Repeat("-", 40)))
	c.println(c.styles.Title.Render("Recent games"))
	for _, record := range recent {
		output, err := c.messaging.GetRecentGameMessage(ctx, &messaging.GetRecentGameMessageInput{
			Record: record,
		})
		if err != nil {
			return err
		}
		c.println(output.Message)
	}

	return nil
}
