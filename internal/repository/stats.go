package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
)

var ErrStatsConflict = errors.New("stats were modified concurrently")

const (
	statsKey = "stats"

	maxStatsRetries = 5
)

type StatsRepository interface {
	GetAll(ctx context.Context) ([]entity.PlayerStats, error)
	RecordResult(ctx context.Context, names []string, winnerName string) error
}

type dbStats struct {
	logger *slog.Logger
	client *redis.Client
}

// NewStatsRepository stores the per-name stats as one flat JSON list.
func NewStatsRepository(logger *slog.Logger, client *redis.Client) StatsRepository {
	return &dbStats{
		logger: logger.With("component", "stats-repository"),
		client: client,
	}
}

func (that *dbStats) GetAll(ctx context.Context) ([]entity.PlayerStats, error) {
	response, err := that.client.Get(ctx, statsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return []entity.PlayerStats{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return that.decode(response), nil
}

// RecordResult counts one game for every name and a win for winnerName. The
// read-modify-write runs under WATCH and is retried when another writer wins.
func (that *dbStats) RecordResult(ctx context.Context, names []string, winnerName string) error {
	update := func(tx *redis.Tx) error {
		response, err := tx.Get(ctx, statsKey).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to get stats: %w", err)
		}

		stats := entity.RecordGameResult(that.decode(response), names, winnerName)

		statsJSON, err := json.Marshal(stats)
		if err != nil {
			return fmt.Errorf("could not marshal stats: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, statsKey, statsJSON, 0)
			return nil
		})

		return err
	}

	for range maxStatsRetries {
		err := that.client.Watch(ctx, update, statsKey)
		if err == nil {
			return nil
		}

		if !errors.Is(err, redis.TxFailedErr) {
			return fmt.Errorf("failed to record result: %w", err)
		}
	}

	return ErrStatsConflict
}

// decode never fails: unreadable stats are logged and treated as empty.
func (that *dbStats) decode(data []byte) []entity.PlayerStats {
	if len(data) == 0 {
		return []entity.PlayerStats{}
	}

	var stats []entity.PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		that.logger.Warn("malformed stats, starting from empty", "error", err)
		return []entity.PlayerStats{}
	}

	if stats == nil {
		return []entity.PlayerStats{}
	}

	return stats
}
