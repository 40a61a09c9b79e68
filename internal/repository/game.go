package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"omok/internal/domain/game"
	errs "omok/internal/errors"
)

const gameKeyPrefix = "omok:game:"

// GameRepository keeps in-progress games in Redis. Each save refreshes the
// TTL, so abandoned games expire on their own.
type GameRepository struct {
	log   *zap.SugaredLogger
	redis *redis.Client
	ttl   time.Duration
}

func NewGameRepository(log *zap.SugaredLogger, redis *redis.Client, ttl time.Duration) *GameRepository {
	return &GameRepository{
		log:   log,
		redis: redis,
		ttl:   ttl,
	}
}

func (g *GameRepository) GenerateGameKey(ctx context.Context) (string, error) {
	for i := 0; i < 3; i++ {
		key := uuid.New().String()
		n, err := g.redis.Exists(ctx, gameKeyPrefix+key).Result()
		if err != nil {
			return "", fmt.Errorf("check game key: %w", err)
		}
		if n == 0 {
			return key, nil
		}
	}
	return "", fmt.Errorf("generate game key: %w", errs.ErrInternal)
}

func (g *GameRepository) SaveGame(ctx context.Context, record game.Record) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal game %s: %w", record.GameKey, err)
	}
	if err := g.redis.Set(ctx, gameKeyPrefix+record.GameKey, data, g.ttl).Err(); err != nil {
		g.log.Errorf("failed to save game %s: %v", record.GameKey, err)
		return fmt.Errorf("save game %s: %w", record.GameKey, err)
	}
	return nil
}

func (g *GameRepository) LoadGame(ctx context.Context, gameKey string) (game.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	data, err := g.redis.Get(ctx, gameKeyPrefix+gameKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return game.Record{}, fmt.Errorf("game %s: %w", gameKey, errs.ErrGameNotFound)
	}
	if err != nil {
		g.log.Errorf("failed to load game %s: %v", gameKey, err)
		return game.Record{}, fmt.Errorf("load game %s: %w", gameKey, err)
	}

	var record game.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return game.Record{}, fmt.Errorf("decode game %s: %w", gameKey, err)
	}
	return record, nil
}

func (g *GameRepository) DeleteGame(ctx context.Context, gameKey string) error {
	n, err := g.redis.Del(ctx, gameKeyPrefix+gameKey).Result()
	if err != nil {
		return fmt.Errorf("delete game %s: %w", gameKey, err)
	}
	if n == 0 {
		return fmt.Errorf("game %s: %w", gameKey, errs.ErrGameNotFound)
	}
	return nil
}
