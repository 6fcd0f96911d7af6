package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/creativeintel/artconnect/config"
	"github.com/creativeintel/artconnect/internal/cache"
	"github.com/creativeintel/artconnect/internal/ingest"
	"github.com/creativeintel/artconnect/internal/models"
	"github.com/creativeintel/artconnect/internal/scoring"
)

// Pipeline runs the full scoring pass: load both sources, normalize to
// one batch, extract factors, score and rank. The scored batch is
// cached keyed by source-data identity, so a refresh with unchanged
// inputs skips the sentiment pass.
type Pipeline struct {
	cfg   *config.Config
	cache cache.ScoreCache
}

func New(cfg *config.Config, c cache.ScoreCache) *Pipeline {
	if c == nil {
		c = cache.NewMemoryCache()
	}
	return &Pipeline{cfg: cfg, cache: c}
}

// ScoredBatch returns the ranked batch for the configured sources.
func (p *Pipeline) ScoredBatch(ctx context.Context) ([]models.ScoredInteraction, error) {
	instaData, err := os.ReadFile(p.cfg.Data.InstagramPath)
	if err != nil {
		return nil, fmt.Errorf("[Pipeline] reading %s: %w", p.cfg.Data.InstagramPath, err)
	}
	twitterData, err := os.ReadFile(p.cfg.Data.TwitterPath)
	if err != nil {
		return nil, fmt.Errorf("[Pipeline] reading %s: %w", p.cfg.Data.TwitterPath, err)
	}

	key := cache.KeyFromSources(instaData, twitterData)
	if scored, ok := p.cache.Get(ctx, key); ok {
		slog.Debug("[Pipeline] Using cached scored batch", slog.Int("records", len(scored)))
		return scored, nil
	}

	instaSrc, err := ingest.ParseInstagramCSV(p.cfg.Data.InstagramPath, instaData)
	if err != nil {
		return nil, err
	}
	twitterSrc, err := ingest.ParseTwitterJSON(p.cfg.Data.TwitterPath, twitterData)
	if err != nil {
		return nil, err
	}

	batch, err := ingest.Normalize(instaSrc, twitterSrc)
	if err != nil {
		return nil, err
	}

	scored := scoring.ScoreBatch(batch, scoring.NewParams(p.cfg.Scoring))
	p.cache.Put(ctx, key, scored)

	slog.Info("[Pipeline] Scored batch",
		slog.Int("records", len(scored)))
	return scored, nil
}
