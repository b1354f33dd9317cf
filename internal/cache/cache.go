// Package cache memoises recent ScoreResults in-process with
// github.com/dgraph-io/ristretto, mirroring common/cache/ristretto.go's
// GeneralCache. This is a request-level aid for internal/httpapi; the
// scoring engine itself never reads or writes it.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"

	"riichiscore/internal/mahjong"
)

// ResultCache holds recently computed ScoreResults keyed by a hash of the
// (hand, context, rules) request triple.
type ResultCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// New creates a ResultCache with the given max total cost and default
// entry TTL. Set charges every entry a cost of 1, so maxCost bounds the
// number of entries, not their size in bytes.
func New(maxCost int64, ttl time.Duration) (*ResultCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e7,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create ristretto cache: %w", err)
	}
	return &ResultCache{cache: c, ttl: ttl}, nil
}

// Key derives a stable cache key for a scoring request.
func Key(h mahjong.HandInput, ctx mahjong.ContextInput, rules mahjong.RuleSet) (string, error) {
	payload := struct {
		Hand  mahjong.HandInput
		Ctx   mahjong.ContextInput
		Rules mahjong.RuleSet
	}{h, ctx, rules}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// Get returns a cached result for key, if present.
func (c *ResultCache) Get(key string) (*mahjong.ScoreResult, bool) {
	v, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	res, ok := v.(*mahjong.ScoreResult)
	return res, ok
}

// Set stores res under key with the cache's default TTL.
func (c *ResultCache) Set(key string, res *mahjong.ScoreResult) bool {
	return c.cache.SetWithTTL(key, res, 1, c.ttl)
}

// Close releases the cache's background goroutines.
func (c *ResultCache) Close() {
	c.cache.Close()
}
