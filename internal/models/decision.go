package models

// Operator actions over a drafted reply.
const (
	ActionApprove = "APPROVE"
	ActionEdit    = "EDIT"
	ActionReject  = "REJECT"
)

// DecisionLogEntry is one appended human decision. Entries are never
// mutated or deleted; Timestamp is the wall-clock time of the decision,
// not the interaction's own timestamp.
type DecisionLogEntry struct {
	Timestamp     string `json:"timestamp"`
	InteractionID string `json:"interaction_id"`
	Platform      string `json:"platform"`
	UserHandle    string `json:"user_handle"`
	Action        string `json:"action"`
	OriginalReply string `json:"original_reply"`
	FinalReply    string `json:"final_reply"`
}
