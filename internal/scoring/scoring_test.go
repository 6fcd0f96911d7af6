package scoring

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creativeintel/artconnect/config"
	"github.com/creativeintel/artconnect/internal/models"
)

func testParams(now time.Time) Params {
	p := NewParams(config.Default().Scoring)
	p.Now = func() time.Time { return now }
	return p
}

func TestKeywordFactor(t *testing.T) {
	keywords := config.Default().Scoring.Keywords

	tests := []struct {
		name string
		text string
		want int
	}{
		{"commission intent", "I'd love to commission a piece in this style.", 1},
		{"case insensitive", "DO YOU SELL PRINTS?", 1},
		{"substring match inside larger word", "my printer broke", 1},
		{"no keyword", "Love this!", 0},
		{"empty text", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeywordFactor(tt.text, keywords))
		})
	}
}

func TestSentimentFactorMapping(t *testing.T) {
	assert.Equal(t, 0.0, SentimentFactor(-0.8))
	assert.Equal(t, 0.0, SentimentFactor(0))
	assert.Equal(t, 0.75, SentimentFactor(0.5))
	assert.Equal(t, 1.0, SentimentFactor(1))

	// Any positive compound lands in (0.5, 1.0].
	for _, c := range []float64{0.001, 0.2, 0.9999} {
		f := SentimentFactor(c)
		assert.Greater(t, f, 0.5)
		assert.LessOrEqual(t, f, 1.0)
	}
}

func TestUserInfluence(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	ts := now.Format(models.TimestampLayout)

	batch := []models.Interaction{
		{InteractionID: "A", UserFollowers: 0, Timestamp: ts},
		{InteractionID: "B", UserFollowers: 100, Timestamp: ts},
		{InteractionID: "C", UserFollowers: 200, Timestamp: ts},
	}
	scored := ScoreBatch(batch, testParams(now))

	influences := make(map[string]float64, len(scored))
	for _, s := range scored {
		influences[s.InteractionID] = s.UserInfluence
	}
	assert.Equal(t, 0.0, influences["A"])
	assert.Equal(t, 0.5, influences["B"])
	assert.Equal(t, 1.0, influences["C"])
}

func TestUserInfluenceAllZeroBatch(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	ts := now.Format(models.TimestampLayout)

	batch := []models.Interaction{
		{InteractionID: "A", Timestamp: ts},
		{InteractionID: "B", Timestamp: ts},
	}
	for _, s := range ScoreBatch(batch, testParams(now)) {
		assert.Equal(t, 0.0, s.UserInfluence)
	}
}

func TestRecencyFactor(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	window := 30

	tests := []struct {
		name string
		ts   string
		want float64
	}{
		{"now", now.Format(models.TimestampLayout), 1.0},
		{"future", now.Add(48 * time.Hour).Format(models.TimestampLayout), 1.0},
		{"15 days old", now.AddDate(0, 0, -15).Format(models.TimestampLayout), 0.5},
		{"30 days old", now.AddDate(0, 0, -30).Format(models.TimestampLayout), 0.0},
		{"45 days old", now.AddDate(0, 0, -45).Format(models.TimestampLayout), 0.0},
		{"unparsable", "yesterday-ish", 0.5},
		{"empty", "", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RecencyFactor(tt.ts, now, window), 1e-9)
		})
	}
}

func TestScoreBoundsAndRounding(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	batch := []models.Interaction{
		{InteractionID: "A", UserFollowers: 1000, Timestamp: now.Format(models.TimestampLayout),
			TextContent: "I'm a collector and really interested in this piece."},
		{InteractionID: "B", UserFollowers: 10, Timestamp: "not-a-timestamp", TextContent: ""},
		{InteractionID: "C", UserFollowers: 0, Timestamp: now.AddDate(0, 0, -45).Format(models.TimestampLayout),
			TextContent: "This is terrible and awful."},
	}

	for _, s := range ScoreBatch(batch, testParams(now)) {
		assert.GreaterOrEqual(t, s.OpportunityScore, 0.0)
		assert.LessOrEqual(t, s.OpportunityScore, 100.0)
		// Rounded to exactly one decimal.
		assert.InDelta(t, math.Round(s.OpportunityScore*10), s.OpportunityScore*10, 1e-9)
	}
}

func TestScoringIdempotent(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	batch := []models.Interaction{
		{InteractionID: "A", UserFollowers: 500, Timestamp: now.AddDate(0, 0, -3).Format(models.TimestampLayout),
			TextContent: "Do you sell prints of this artwork?"},
		{InteractionID: "B", UserFollowers: 900, Timestamp: now.AddDate(0, 0, -20).Format(models.TimestampLayout),
			TextContent: "Amazing work!"},
		{InteractionID: "C", UserFollowers: 20, Timestamp: now.Format(models.TimestampLayout),
			TextContent: "Nice composition."},
	}

	p := testParams(now)
	first := ScoreBatch(batch, p)
	second := ScoreBatch(batch, p)
	assert.Equal(t, first, second)
}

func TestStableSortKeepsTieOrder(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	ts := now.Format(models.TimestampLayout)

	// Identical inputs apart from the ID produce identical scores; the
	// normalizer order must survive the sort.
	batch := []models.Interaction{
		{InteractionID: "first", UserFollowers: 100, Timestamp: ts, TextContent: "Love this!"},
		{InteractionID: "second", UserFollowers: 100, Timestamp: ts, TextContent: "Love this!"},
		{InteractionID: "third", UserFollowers: 100, Timestamp: ts, TextContent: "Love this!"},
	}

	scored := ScoreBatch(batch, testParams(now))
	require.Len(t, scored, 3)
	assert.Equal(t, "first", scored[0].InteractionID)
	assert.Equal(t, "second", scored[1].InteractionID)
	assert.Equal(t, "third", scored[2].InteractionID)
}

func TestCommissionInquiryOutranksPraise(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	batch := []models.Interaction{
		{InteractionID: "B", UserFollowers: 10, TextContent: "Love this!",
			Timestamp: now.AddDate(0, 0, -29).Format(models.TimestampLayout)},
		{InteractionID: "A", UserFollowers: 1000, TextContent: "Do you sell prints?",
			Timestamp: now.Format(models.TimestampLayout)},
	}

	scored := ScoreBatch(batch, testParams(now))
	require.Len(t, scored, 2)
	assert.Equal(t, "A", scored[0].InteractionID)
	assert.Greater(t, scored[0].OpportunityScore, scored[1].OpportunityScore)
}

func TestInputBatchNotMutated(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	batch := []models.Interaction{
		{InteractionID: "Z", UserFollowers: 5, Timestamp: now.Format(models.TimestampLayout), TextContent: "Wow!"},
		{InteractionID: "A", UserFollowers: 50, Timestamp: now.Format(models.TimestampLayout), TextContent: "What is the price?"},
	}
	ScoreBatch(batch, testParams(now))

	assert.Equal(t, "Z", batch[0].InteractionID)
	assert.Equal(t, "A", batch[1].InteractionID)
}
