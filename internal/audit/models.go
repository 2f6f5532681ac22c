package audit

import "time"

// Event records one unification run. Keep it transport-agnostic so stores
// and sinks can fan out.
type Event struct {
	ID           string    `json:"id"`
	Action       Action    `json:"action"`
	SelectionKey string    `json:"selection_key"`
	Categories   []string  `json:"categories"`
	Generated    int       `json:"generated"`
	Failed       int       `json:"failed"`
	TotalItems   int       `json:"total_items"`
	RequestID    string    `json:"request_id,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Action identifies what kind of run produced the event.
type Action string

const (
	ActionGenerate    Action = "unified_generated"
	ActionGenerateAll Action = "unified_batch_generated"
)
