package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug")
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	logger, err = newLogger("warn")
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, logger.GetLevel())
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := newLogger("loud")
	assert.Error(t, err)
}

func TestPlayCmd_RejectsWinPointsBelowOne(t *testing.T) {
	cmd := &PlayCmd{WinPoints: 0}
	err := cmd.Run(log.New(io.Discard))
	assert.ErrorContains(t, err, "win points must be at least 1")
}

func TestLeaderboardCmd_RequiresRedis(t *testing.T) {
	cmd := &LeaderboardCmd{Limit: 10}
	err := cmd.Run(log.New(io.Discard))
	assert.ErrorContains(t, err, "--redis-addr")
}
