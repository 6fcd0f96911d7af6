package analytics

import (
	"github.com/creativeintel/artconnect/internal/models"
)

// Summary holds the dashboard aggregates over one scored batch plus the
// decision log.
type Summary struct {
	TotalInteractions int
	InstagramCount    int
	TwitterCount      int
	HighValueCount    int

	ApproveCount int
	EditCount    int
	RejectCount  int
	ActedCount   int

	// ApprovalRate is (APPROVE+EDIT)/acted as a percentage; 0 when
	// nothing has been acted on yet.
	ApprovalRate float64
}

// RepliedCount is the number of drafts that actually went out (approved
// as-is or after an edit).
func (s Summary) RepliedCount() int {
	return s.ApproveCount + s.EditCount
}

// FunnelStage is one step of the engagement funnel: all interactions,
// the high-value subset, and the replied subset.
type FunnelStage struct {
	Stage string
	Count int
}

func (s Summary) Funnel() []FunnelStage {
	return []FunnelStage{
		{"Total Interactions", s.TotalInteractions},
		{"High-Value", s.HighValueCount},
		{"Replied", s.RepliedCount()},
	}
}

// Summarize computes the aggregates the display boundary consumes.
func Summarize(scored []models.ScoredInteraction, entries []models.DecisionLogEntry, highValueThreshold float64) Summary {
	var s Summary
	s.TotalInteractions = len(scored)

	for _, in := range scored {
		switch in.Platform {
		case models.PlatformInstagram:
			s.InstagramCount++
		case models.PlatformTwitter:
			s.TwitterCount++
		}
		if in.OpportunityScore >= highValueThreshold {
			s.HighValueCount++
		}
	}

	for _, e := range entries {
		switch e.Action {
		case models.ActionApprove:
			s.ApproveCount++
		case models.ActionEdit:
			s.EditCount++
		case models.ActionReject:
			s.RejectCount++
		}
	}
	s.ActedCount = s.ApproveCount + s.EditCount + s.RejectCount

	if s.ActedCount > 0 {
		s.ApprovalRate = float64(s.ApproveCount+s.EditCount) / float64(s.ActedCount) * 100
	}

	return s
}
