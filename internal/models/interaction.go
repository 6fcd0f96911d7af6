package models

const (
	PlatformInstagram = "Instagram"
	PlatformTwitter   = "Twitter"
)

// TimestampLayout is the naive source format both platforms emit.
const TimestampLayout = "2006-01-02 15:04:05"

// Interaction is one ingested comment/mention. Immutable after
// normalization; scoring produces a derived ScoredInteraction copy.
type Interaction struct {
	InteractionID string `json:"interaction_id"`
	Platform      string `json:"platform"`
	Timestamp     string `json:"timestamp"`
	UserHandle    string `json:"user_handle"`
	UserFollowers int    `json:"user_followers"`
	TextContent   string `json:"text_content"`
}

type ScoredInteraction struct {
	Interaction
	KeywordFactor    int     `json:"keyword_factor"`
	SentimentFactor  float64 `json:"sentiment_factor"`
	UserInfluence    float64 `json:"user_influence"`
	RecencyFactor    float64 `json:"recency_factor"`
	OpportunityScore float64 `json:"opportunity_score"`
}
