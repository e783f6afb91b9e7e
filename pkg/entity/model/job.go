package model

import "time"

// JobType names a kind of collection job.
type JobType string

const (
	JobTypeAutoCollect           JobType = "auto_collect"
	JobTypeManualCollect         JobType = "manual_collect"
	JobTypeDocCount              JobType = "doc_count"
	JobTypeLargeScaleAutoCollect JobType = "large_scale_auto_collect"
)

// JobStatus is the lifecycle state of a collection job.
// pending -> running -> completed | failed | cancelled.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCancelled JobStatus = "cancelled"
)

// Terminal reports whether the status allows no further transition.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed || s == JobStatusCancelled
}

// JobParams configures one collection job.
type JobParams struct {
	Limit          int      `json:"limit"`
	Concurrent     int      `json:"concurrent"`
	TargetKeywords int      `json:"targetKeywords"`
	Seeds          []string `json:"seeds,omitempty"`
}

// CollectionJobView is the externally visible snapshot of one job.
// The registry owns the live record; views are copies.
type CollectionJobView struct {
	ID          ID                     `json:"id"`
	Type        JobType                `json:"type"`
	Status      JobStatus              `json:"status"`
	Progress    int                    `json:"progress"`
	Total       int                    `json:"total"`
	Current     string                 `json:"current,omitempty"`
	Message     string                 `json:"message,omitempty"`
	Result      map[string]interface{} `json:"result,omitempty"`
	Error       string                 `json:"error,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
	StartedAt   *time.Time             `json:"startedAt,omitempty"`
	CompletedAt *time.Time             `json:"completedAt,omitempty"`
}
