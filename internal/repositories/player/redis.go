package player

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/pig/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	playerStatsKeyPrefix = "player_stats:"
	leaderboardKey       = "leaderboard:wins"

	// Hash fields of a player's stats
	fieldGames  = "games"
	fieldWins   = "wins"
	fieldPoints = "points"

	// DefaultLeaderboardLimit is used when GetLeaderboard is called without a limit
	DefaultLeaderboardLimit = 10
)

// ErrPlayerNotFound is returned when a player has no recorded games
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// RecordResult updates a player's stats and leaderboard position
func (r *redisRepository) RecordResult(ctx context.Context, input *RecordResultInput) error {
	if input == nil || input.PlayerName == "" {
		return errors.New("input and player name cannot be empty")
	}

	wins := 0
	if input.Won {
		wins = 1
	}

	pipe := r.client.TxPipeline()

	statsKey := fmt.Sprintf("%s%s", playerStatsKeyPrefix, input.PlayerName)
	pipe.HIncrBy(ctx, statsKey, fieldGames, 1)
	pipe.HIncrBy(ctx, statsKey, fieldWins, int64(wins))
	pipe.HIncrBy(ctx, statsKey, fieldPoints, int64(input.Points))

	// Incrementing by zero still puts losers on the board
	pipe.ZIncrBy(ctx, leaderboardKey, float64(wins), input.PlayerName)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

// GetPlayerStats retrieves a player's stats from Redis
func (r *redisRepository) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*models.PlayerStats, error) {
	if input == nil || input.PlayerName == "" {
		return nil, errors.New("input and player name cannot be empty")
	}

	statsKey := fmt.Sprintf("%s%s", playerStatsKeyPrefix, input.PlayerName)
	fields, err := r.client.HGetAll(ctx, statsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrPlayerNotFound
	}

	return statsFromHash(input.PlayerName, fields)
}

// GetLeaderboard retrieves the players with the most wins from Redis
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*models.Leaderboard, error) {
	limit := DefaultLeaderboardLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	names, err := r.client.ZRevRange(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	if len(names) == 0 {
		return &models.Leaderboard{
			Entries: []*models.PlayerStats{},
		}, nil
	}

	pipe := r.client.Pipeline()
	statsCommands := make([]*redis.MapStringStringCmd, len(names))
	for i, name := range names {
		statsCommands[i] = pipe.HGetAll(ctx, fmt.Sprintf("%s%s", playerStatsKeyPrefix, name))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	entries := make([]*models.PlayerStats, 0, len(names))
	for i, cmd := range statsCommands {
		fields, err := cmd.Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get stats for %s: %w", names[i], err)
		}
		if len(fields) == 0 {
			continue
		}

		stats, err := statsFromHash(names[i], fields)
		if err != nil {
			return nil, err
		}
		entries = append(entries, stats)
	}

	return &models.Leaderboard{
		Entries: entries,
	}, nil
}

func statsFromHash(name string, fields map[string]string) (*models.PlayerStats, error) {
	stats := &models.PlayerStats{
		PlayerName: name,
	}

	targets := map[string]*int{
		fieldGames:  &stats.GamesPlayed,
		fieldWins:   &stats.Wins,
		fieldPoints: &stats.TotalPoints,
	}

	for field, target := range targets {
		raw, ok := fields[field]
		if !ok {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s for %s: %w", field, name, err)
		}
		*target = value
	}

	return stats, nil
}
