package cache

import (
	"context"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/creativeintel/artconnect/internal/models"
)

// Scored batches are keyed by source-data identity, so a cached entry
// stays valid until the input files change. Recency factors still age,
// so entries expire after an hour regardless.
const scoreTTLSeconds = 3600

// ScoreCache caches a scored batch between view refreshes, skipping the
// per-record sentiment pass when the sources have not changed.
type ScoreCache interface {
	Get(ctx context.Context, key string) ([]models.ScoredInteraction, bool)
	Put(ctx context.Context, key string, batch []models.ScoredInteraction)
}

// KeyFromSources derives the cache key from the raw bytes of every
// input source.
func KeyFromSources(blobs ...[]byte) string {
	h := sha256.New()
	for _, b := range blobs {
		h.Write(b)
	}
	return "artconnect:scored:" + hex.EncodeToString(h.Sum(nil))
}

// NewFromEnv returns a Valkey-backed cache when VALKEY_INIT_ADDRESS is
// set and reachable, and an in-process cache otherwise.
func NewFromEnv() ScoreCache {
	addr := os.Getenv("VALKEY_INIT_ADDRESS")
	if addr == "" {
		return NewMemoryCache()
	}

	vc, err := NewValkeyCache(addr)
	if err != nil {
		slog.Warn("[ScoreCache] Valkey unavailable, falling back to in-process cache",
			slog.String("error", err.Error()))
		return NewMemoryCache()
	}
	return vc
}

// MemoryCache is the single-process fallback.
type MemoryCache struct {
	mu      sync.Mutex
	batches map[string][]models.ScoredInteraction
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{batches: make(map[string][]models.ScoredInteraction)}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]models.ScoredInteraction, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	batch, ok := c.batches[key]
	return batch, ok
}

func (c *MemoryCache) Put(_ context.Context, key string, batch []models.ScoredInteraction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.batches[key] = batch
}

// ValkeyCache stores scored batches as JSON values with a TTL.
type ValkeyCache struct {
	client valkey.Client
}

func NewValkeyCache(addr string) (*ValkeyCache, error) {
	opts := valkey.ClientOption{
		InitAddress:      []string{addr},
		Password:         os.Getenv("VALKEY_PASSWORD"),
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if os.Getenv("VALKEY_TLS") == "true" {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[ScoreCache] failed to create Valkey client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ScoreCache] failed to ping Valkey: %w", err)
	}

	slog.Info("[ScoreCache] Connected to Valkey", slog.String("addr", addr))
	return &ValkeyCache{client: client}, nil
}

func (c *ValkeyCache) Get(ctx context.Context, key string) ([]models.ScoredInteraction, bool) {
	res := c.client.Do(ctx, c.client.B().Get().Key(key).Build())
	if err := res.Error(); err != nil {
		if !valkey.IsValkeyNil(err) {
			slog.Warn("[ScoreCache] Get failed", slog.String("error", err.Error()))
		}
		return nil, false
	}

	raw, err := res.AsBytes()
	if err != nil {
		return nil, false
	}

	var batch []models.ScoredInteraction
	if err := json.Unmarshal(raw, &batch); err != nil {
		slog.Warn("[ScoreCache] Dropping undecodable cache entry",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, false
	}
	return batch, true
}

func (c *ValkeyCache) Put(ctx context.Context, key string, batch []models.ScoredInteraction) {
	raw, err := json.Marshal(batch)
	if err != nil {
		slog.Error("[ScoreCache] Failed to encode batch", slog.String("error", err.Error()))
		return
	}

	cmd := c.client.B().Set().Key(key).Value(valkey.BinaryString(raw)).ExSeconds(scoreTTLSeconds).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		slog.Warn("[ScoreCache] Put failed", slog.String("error", err.Error()))
	}
}

func (c *ValkeyCache) Close() {
	c.client.Close()
}
