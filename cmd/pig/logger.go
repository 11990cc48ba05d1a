package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger writes to stderr so game output on stdout stays clean
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "pig",
		Level:           lvl,
	}), nil
}
