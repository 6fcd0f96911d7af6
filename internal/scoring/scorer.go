package scoring

import (
	"math"
	"sort"
	"time"

	"github.com/creativeintel/artconnect/config"
	"github.com/creativeintel/artconnect/internal/models"
	"github.com/creativeintel/artconnect/internal/sentiment"
)

// Params bundles everything a scoring pass depends on. The clock and the
// polarity scorer are injected so tests can pin "now" and avoid the
// lexicon; production code uses NewParams.
type Params struct {
	Weights           config.Weights
	Keywords          []string
	RecencyWindowDays int
	Now               func() time.Time
	Compound          func(string) float64
}

func NewParams(cfg config.Scoring) Params {
	return Params{
		Weights:           cfg.Weights,
		Keywords:          cfg.Keywords,
		RecencyWindowDays: cfg.RecencyWindowDays,
		Now:               time.Now,
		Compound:          sentiment.Compound,
	}
}

// ScoreBatch computes the four factors and the weighted opportunity
// score for every interaction, returning a new slice ranked by score
// descending. Ties keep normalizer order, so identical inputs always
// rank identically. The input batch is not mutated.
//
// User influence is relative to this batch's maximum follower count, so
// rescoring the same interaction inside a different batch may yield a
// different influence value. That batch-relative normalization is a
// deliberate design property, not a bug.
func ScoreBatch(batch []models.Interaction, p Params) []models.ScoredInteraction {
	now := p.Now()
	maxFollowers := MaxFollowers(batch)

	scored := make([]models.ScoredInteraction, 0, len(batch))
	for _, in := range batch {
		s := models.ScoredInteraction{
			Interaction:     in,
			KeywordFactor:   KeywordFactor(in.TextContent, p.Keywords),
			SentimentFactor: SentimentFactor(p.Compound(in.TextContent)),
			UserInfluence:   float64(in.UserFollowers) / float64(maxFollowers),
			RecencyFactor:   RecencyFactor(in.Timestamp, now, p.RecencyWindowDays),
		}

		raw := p.Weights.Keyword*float64(s.KeywordFactor) +
			p.Weights.Sentiment*s.SentimentFactor +
			p.Weights.Influence*s.UserInfluence +
			p.Weights.Recency*s.RecencyFactor

		s.OpportunityScore = round1(clamp(raw*100, 0, 100))
		scored = append(scored, s)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].OpportunityScore > scored[j].OpportunityScore
	})

	return scored
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
