package model

import "time"

// JobStatus is the lifecycle state of an import job.
// processing -> completed | failed; terminal states are final.
type JobStatus string

const (
	JobProcessing JobStatus = "processing"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
)

// ImportSummary counts the outcome of one upload attempt.
type ImportSummary struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Errors   int `json:"errors"`
	Total    int `json:"total"`
}

// ImportJob records one CSV upload attempt.
type ImportJob struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	AccountID   string        `json:"accountId"`
	Filename    string        `json:"filename"`
	Status      JobStatus     `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
	Summary     ImportSummary `json:"summary"`
}
