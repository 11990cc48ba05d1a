package main

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pig/internal/repositories/game"
	"github.com/KirkDiggler/pig/internal/repositories/player"
)

// RedisFlags are shared by every command that touches game history
type RedisFlags struct {
	RedisAddr     string `kong:"env='PIG_REDIS_ADDR',help='Redis address for game history, empty disables history'"`
	RedisPassword string `kong:"env='PIG_REDIS_PASSWORD',help='Redis password'"`
	RedisDB       int    `kong:"default='0',env='PIG_REDIS_DB',help='Redis database number'"`
}

type repositories struct {
	client  *redis.Client
	games   game.Repository
	players player.Repository
}

func (r *repositories) Close() error {
	return r.client.Close()
}

// openRepositories connects to Redis and builds the history repositories
func (f *RedisFlags) openRepositories() (*repositories, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     f.RedisAddr,
		Password: f.RedisPassword,
		DB:       f.RedisDB,
	})

	games, err := game.NewRedis(&game.Config{
		RedisClient: client,
	})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to create game repository: %w", err)
	}

	players, err := player.NewRedis(&player.Config{
		RedisClient: client,
	})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to create player repository: %w", err)
	}

	return &repositories{
		client:  client,
		games:   games,
		players: players,
	}, nil
}
