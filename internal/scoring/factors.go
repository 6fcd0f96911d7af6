package scoring

import (
	"strings"
	"time"

	"github.com/creativeintel/artconnect/internal/models"
)

// KeywordFactor returns 1 if the text contains any high-value keyword,
// else 0. Plain case-insensitive substring match; "printer" matching
// "print" is an accepted approximation.
func KeywordFactor(text string, keywords []string) int {
	t := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(t, kw) {
			return 1
		}
	}
	return 0
}

// SentimentFactor maps a VADER compound polarity in [-1,1] to [0,1].
// Only enthusiasm should boost a score: non-positive compounds
// contribute nothing, positive compounds land in (0.5, 1.0].
func SentimentFactor(compound float64) float64 {
	if compound <= 0 {
		return 0.0
	}
	return (compound + 1.0) / 2.0
}

// MaxFollowers finds the batch maximum for influence normalization. An
// all-zero batch yields 1 so every influence divides to 0.
func MaxFollowers(batch []models.Interaction) int {
	max := 0
	for _, in := range batch {
		if in.UserFollowers > max {
			max = in.UserFollowers
		}
	}
	if max <= 0 {
		return 1
	}
	return max
}

// RecencyFactor decays linearly from 1.0 (today or future) to 0.0 at the
// window boundary. An unparsable timestamp degrades to a neutral 0.5
// rather than failing the batch.
func RecencyFactor(timestamp string, now time.Time, windowDays int) float64 {
	ts, err := time.ParseInLocation(models.TimestampLayout, timestamp, now.Location())
	if err != nil {
		return 0.5
	}

	daysDiff := int(now.Sub(ts).Hours() / 24)
	if daysDiff <= 0 {
		return 1.0
	}
	if daysDiff >= windowDays {
		return 0.0
	}
	return 1.0 - float64(daysDiff)/float64(windowDays)
}
