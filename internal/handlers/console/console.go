package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/KirkDiggler/pig/internal/services/game"
	"github.com/KirkDiggler/pig/internal/services/messaging"
)

var _ game.Console = (*Console)(nil)

// Config holds the configuration for the console
type Config struct {
	// In is read as whitespace separated tokens
	In io.Reader

	// Out receives prompts and game output
	Out io.Writer

	MessagingService messaging.Service

	// Logger defaults to log.Default()
	Logger *log.Logger
}

// Console plays the game over a pair of text streams
type Console struct {
	scanner   *bufio.Scanner
	out       io.Writer
	styles    *Styles
	messaging messaging.Service
	logger    *log.Logger
}

// New creates a new console
func New(cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.In == nil {
		return nil, errors.New("input reader cannot be nil")
	}

	if cfg.Out == nil {
		return nil, errors.New("output writer cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	scanner := bufio.NewScanner(cfg.In)
	scanner.Split(bufio.ScanWords)

	return &Console{
		scanner:   scanner,
		out:       cfg.Out,
		styles:    NewStyles(lipgloss.NewRenderer(cfg.Out)),
		messaging: cfg.MessagingService,
		logger:    logger,
	}, nil
}

// PromptPlayerCount asks until it gets a whole number of at least 1
func (c *Console) PromptPlayerCount(ctx context.Context) (int, error) {
	for {
		token, err := c.prompt(ctx, &messaging.GetPromptMessageInput{
			Type: messaging.PromptTypePlayerCount,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to read player count: %w", err)
		}

		count, err := strconv.Atoi(token)
		if err == nil && count >= 1 {
			return count, nil
		}

		c.logger.Debug("rejected player count", "input", token)

		output, err := c.messaging.GetInvalidPlayerCountMessage(ctx, &messaging.GetInvalidPlayerCountMessageInput{
			Input: token,
		})
		if err != nil {
			return 0, err
		}
		c.println(c.styles.Error.Render(output.Message))
	}
}

// PromptPlayerName reads the name of the player in seat index
func (c *Console) PromptPlayerName(ctx context.Context, index int) (string, error) {
	name, err := c.prompt(ctx, &messaging.GetPromptMessageInput{
		Type:        messaging.PromptTypePlayerName,
		PlayerIndex: index,
	})
	if err != nil {
		return "", fmt.Errorf("failed to read player name: %w", err)
	}

	return name, nil
}

// PromptCommand reads the next raw command token for playerName
func (c *Console) PromptCommand(ctx context.Context, playerName string) (string, error) {
	token, err := c.prompt(ctx, &messaging.GetPromptMessageInput{
		Type:       messaging.PromptTypeCommand,
		PlayerName: playerName,
	})
	if err != nil {
		return "", fmt.Errorf("failed to read command: %w", err)
	}

	return token, nil
}

// prompt writes the prompt text and blocks for the next token
func (c *Console) prompt(ctx context.Context, input *messaging.GetPromptMessageInput) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	output, err := c.messaging.GetPromptMessage(ctx, input)
	if err != nil {
		return "", err
	}
	fmt.Fprint(c.out, c.styles.Prompt.Render(output.Message))

	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return c.scanner.Text(), nil
}

func (c *Console) println(line string) {
	fmt.Fprintln(c.out, line)
}
