package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/creativeintel/artconnect/internal/models"
)

func TestKeyFromSources(t *testing.T) {
	a := KeyFromSources([]byte("instagram"), []byte("twitter"))
	b := KeyFromSources([]byte("instagram"), []byte("twitter"))
	c := KeyFromSources([]byte("instagram"), []byte("twitter-changed"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	batch := []models.ScoredInteraction{
		{Interaction: models.Interaction{InteractionID: "INS-0001"}, OpportunityScore: 70.5},
	}
	c.Put(ctx, "k", batch)

	got, ok := c.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, batch, got)
}

func TestNewFromEnvDefaultsToMemory(t *testing.T) {
	t.Setenv("VALKEY_INIT_ADDRESS", "")
	_, ok := NewFromEnv().(*MemoryCache)
	assert.True(t, ok)
}
