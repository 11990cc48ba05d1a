package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/pig/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix  = "game:"
	recentGamesKey = "recent_games"

	// DefaultRecentLimit is used when GetRecentGames is called without a limit
	DefaultRecentLimit = 10
)

// ErrGameNotFound is returned when a game record is not found
var ErrGameNotFound = errors.New("game not found")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
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

// SaveGame persists a finished game to Redis
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record
	if record.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	pipe := r.client.Pipeline()

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, record.ID)
	pipe.Set(ctx, gameKey, recordJSON, 0) // history never expires

	// Newest games have the highest score
	pipe.ZAdd(ctx, recentGamesKey, redis.Z{
		Score:  float64(record.EndedAt.UnixNano()),
		Member: record.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves a finished game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.GameRecord, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.GameID)
	recordJSON, err := r.client.Get(ctx, gameKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var record models.GameRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &record, nil
}

// GetRecentGames retrieves the latest finished games from Redis
func (r *redisRepository) GetRecentGames(ctx context.Context, input *GetRecentGamesInput) (*GetRecentGamesOutput, error) {
	limit := DefaultRecentLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	gameIDs, err := r.client.ZRevRange(ctx, recentGamesKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get recent game IDs: %w", err)
	}

	if len(gameIDs) == 0 {
		return &GetRecentGamesOutput{
			Records: []*models.GameRecord{},
		}, nil
	}

	// Fetch all records in one round trip
	pipe := r.client.Pipeline()
	gameCommands := make([]*redis.StringCmd, len(gameIDs))
	for i, gameID := range gameIDs {
		gameCommands[i] = pipe.Get(ctx, fmt.Sprintf("%s%s", gameKeyPrefix, gameID))
	}

	// redis.Nil from a missing key surfaces per command, not here
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get recent games: %w", err)
	}

	records := make([]*models.GameRecord, 0, len(gameIDs))
	for i, cmd := range gameCommands {
		recordJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Index entry without a record
				continue
			}
			return nil, fmt.Errorf("failed to get game %s: %w", gameIDs[i], err)
		}

		var record models.GameRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game %s: %w", gameIDs[i], err)
		}

		records = append(records, &record)
	}

	return &GetRecentGamesOutput{
		Records: records,
	}, nil
}
