package model

// BatchItemResult is the outcome of one seed inside a chunk.
type BatchItemResult struct {
	Seed     string            `json:"seed"`
	Success  bool              `json:"success"`
	Outcome  ItemOutcome       `json:"outcome"`
	Keywords []*RelatedKeyword `json:"keywords,omitempty"`
	NewCount int               `json:"newCount"`
	Updated  int               `json:"updated"`
	Skipped  int               `json:"skipped"`
	APICalls int               `json:"apiCalls"`
	Timeout  bool              `json:"timeout"`
	Error    string            `json:"error,omitempty"`

	// PoolExhausted marks a failure caused by an empty credential pool;
	// the run stops instead of burning through the remaining seeds.
	PoolExhausted bool   `json:"-"`
	PoolProvider  string `json:"-"`
}

// ItemOutcome classifies one processed seed.
type ItemOutcome string

const (
	OutcomeNew     ItemOutcome = "new"
	OutcomeUpdated ItemOutcome = "updated"
	OutcomeSkipped ItemOutcome = "skipped"
	OutcomeFailed  ItemOutcome = "failed"
)

// CollectBatchInput is the request body of one auto-collect batch.
// Limit 0 means "as many seeds as the backlog holds this round",
// TargetKeywords 0 means unlimited.
type CollectBatchInput struct {
	Limit          int `json:"limit"`
	Concurrent     int `json:"concurrent"`
	TargetKeywords int `json:"targetKeywords"`
}

// CollectStats summarizes one batch for the caller.
type CollectStats struct {
	TotalAttempted  int      `json:"totalAttempted"`
	SuccessRate     float64  `json:"successRate"`
	TimeoutCount    int      `json:"timeoutCount"`
	APIFailureCount int      `json:"apiFailureCount"`
	FailedSeeds     []string `json:"failedSeeds"`
}

// CollectBatchResult is the response of one auto-collect batch.
type CollectBatchResult struct {
	Success          bool         `json:"success"`
	Processed        int          `json:"processed"`
	TotalNewKeywords int          `json:"totalNewKeywords"`
	Remaining        int          `json:"remaining"`
	Stats            CollectStats `json:"stats"`
}
