// Package store holds the HTTP layer's two upstream persistence
// collaborators: a Redis-backed idempotency cache and a MongoDB-backed
// ruleset/history store, mirroring common/database/redis.go and
// common/database/mongo.go. internal/mahjong never imports this package.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"riichiscore/internal/config"
	"riichiscore/internal/logging"
	"riichiscore/internal/mahjong"
)

// IdempotencyStore deduplicates retried scoring requests by client-supplied
// Idempotency-Key header.
type IdempotencyStore struct {
	cli *redis.Client
	ttl time.Duration
}

// NewIdempotencyStore connects to Redis per cfg and verifies the
// connection with a Ping.
func NewIdempotencyStore(cfg config.RedisConf, ttl time.Duration) (*IdempotencyStore, error) {
	cli := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := cli.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connect: %w", err)
	}
	return &IdempotencyStore{cli: cli, ttl: ttl}, nil
}

// Lookup returns a previously stored result for key, if present.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (*mahjong.ScoreResult, bool, error) {
	raw, err := s.cli.Get(ctx, idemKey(key)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var res mahjong.ScoreResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return nil, false, err
	}
	return &res, true, nil
}

// Remember stores res under key with the store's configured TTL, only if
// no value is already stored (SetNX), so a racing duplicate request does
// not overwrite the first response.
func (s *IdempotencyStore) Remember(ctx context.Context, key string, res *mahjong.ScoreResult) error {
	b, err := json.Marshal(res)
	if err != nil {
		return err
	}
	ok, err := s.cli.SetNX(ctx, idemKey(key), b, s.ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		logging.Debug("idempotency key already recorded: %s", key)
	}
	return nil
}

// Close releases the underlying Redis client.
func (s *IdempotencyStore) Close() error {
	if s == nil {
		return nil
	}
	return s.cli.Close()
}

func idemKey(key string) string {
	return "riichiscore:idem:" + key
}
