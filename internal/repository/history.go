package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
)

const historyKey = "history"

type HistoryRepository interface {
	Append(ctx context.Context, game entity.Game) error
	List(ctx context.Context) ([]entity.Game, error)
}

type dbHistory struct {
	logger *slog.Logger
	client *redis.Client
	limit  int64
}

// NewHistoryRepository keeps finished games in a redis list, oldest first. A
// positive limit trims the list to the most recent games.
func NewHistoryRepository(logger *slog.Logger, client *redis.Client, limit int) HistoryRepository {
	return &dbHistory{
		logger: logger.With("component", "history-repository"),
		client: client,
		limit:  int64(limit),
	}
}

func (that *dbHistory) Append(ctx context.Context, game entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, historyKey, gameJSON)
		if that.limit > 0 {
			pipe.LTrim(ctx, historyKey, -that.limit, -1)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append game to history: %w", err)
	}

	return nil
}

func (that *dbHistory) List(ctx context.Context) ([]entity.Game, error) {
	log := that.logger.With("method", "List")

	entries, err := that.client.LRange(ctx, historyKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	games := make([]entity.Game, 0, len(entries))
	for _, entry := range entries {
		var game entity.Game
		if err = json.Unmarshal([]byte(entry), &game); err != nil {
			log.Warn("skipping malformed history entry", "error", err)
			continue
		}

		games = append(games, game)
	}

	return games, nil
}
