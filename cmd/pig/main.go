package main

import (
	"errors"
	"io/fs"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version     kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel    string           `kong:"default='warn',env='PIG_LOG_LEVEL',help='Log level (debug, info, warn, error)'"`
	Play        PlayCmd          `cmd:"" default:"withargs" help:"Play a game of Pig at the keyboard"`
	Leaderboard LeaderboardCmd   `cmd:"" help:"Show all-time wins and recent games"`
}

func main() {
	// PIG_* settings may also come from a .env file in the working directory
	envErr := godotenv.Load()
	if errors.Is(envErr, fs.ErrNotExist) {
		envErr = nil
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pig"),
		kong.Description("The dice game Pig for two or more players at one keyboard"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	ctx.FatalIfErrorf(envErr, "failed to load .env")

	logger, err := newLogger(cli.LogLevel)
	ctx.FatalIfErrorf(err)

	ctx.FatalIfErrorf(ctx.Run(logger))
}
