package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/creativeintel/artconnect/internal/models"
)

func scoredWith(platform string, score float64) models.ScoredInteraction {
	return models.ScoredInteraction{
		Interaction:      models.Interaction{Platform: platform},
		OpportunityScore: score,
	}
}

func TestSummarize(t *testing.T) {
	scored := []models.ScoredInteraction{
		scoredWith(models.PlatformInstagram, 85.5),
		scoredWith(models.PlatformInstagram, 12.0),
		scoredWith(models.PlatformTwitter, 50.0),
		scoredWith(models.PlatformTwitter, 49.9),
	}
	entries := []models.DecisionLogEntry{
		{Action: models.ActionApprove},
		{Action: models.ActionApprove},
		{Action: models.ActionEdit},
		{Action: models.ActionReject},
	}

	s := Summarize(scored, entries, 50)

	assert.Equal(t, 4, s.TotalInteractions)
	assert.Equal(t, 2, s.InstagramCount)
	assert.Equal(t, 2, s.TwitterCount)
	// Threshold is inclusive.
	assert.Equal(t, 2, s.HighValueCount)

	assert.Equal(t, 2, s.ApproveCount)
	assert.Equal(t, 1, s.EditCount)
	assert.Equal(t, 1, s.RejectCount)
	assert.Equal(t, 4, s.ActedCount)
	assert.InDelta(t, 75.0, s.ApprovalRate, 1e-9)
	assert.Equal(t, 3, s.RepliedCount())
}

func TestSummarizeNoActions(t *testing.T) {
	s := Summarize([]models.ScoredInteraction{scoredWith(models.PlatformTwitter, 10)}, nil, 50)

	assert.Equal(t, 0, s.ActedCount)
	assert.Equal(t, 0.0, s.ApprovalRate)
}

func TestFunnelStages(t *testing.T) {
	s := Summary{TotalInteractions: 240, HighValueCount: 25, ApproveCount: 15, EditCount: 5}
	funnel := s.Funnel()

	assert.Len(t, funnel, 3)
	assert.Equal(t, 240, funnel[0].Count)
	assert.Equal(t, 25, funnel[1].Count)
	assert.Equal(t, 20, funnel[2].Count)
}
