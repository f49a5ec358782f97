package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// JobStore persists import job records.
type JobStore struct {
	db *sql.DB
}

// Create inserts a job and returns its id.
func (s *JobStore) Create(ctx context.Context, job model.ImportJob) (string, error) {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO import_jobs (id, user_id, account_id, filename, status) VALUES (?, ?, ?, ?, ?)`,
		job.ID, job.UserID, job.AccountID, job.Filename, job.Status)
	if err != nil {
		return "", fmt.Errorf("creating import job: %w", err)
	}
	return job.ID, nil
}

// Update moves a job to a terminal status and records its summary.
func (s *JobStore) Update(ctx context.Context, jobID string, status model.JobStatus, summary model.ImportSummary) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE import_jobs
		 SET status = ?, imported = ?, skipped = ?, errors = ?, total = ?, completed_at = ?
		 WHERE id = ?`,
		status, summary.Imported, summary.Skipped, summary.Errors, summary.Total,
		time.Now().UTC(), jobID)
	if err != nil {
		return fmt.Errorf("updating import job: %w", err)
	}
	return nil
}

// Find returns userID's job by id, nil when absent.
func (s *JobStore) Find(ctx context.Context, userID, jobID string) (*model.ImportJob, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, account_id, filename, status, imported, skipped, errors, total, created_at, completed_at
		 FROM import_jobs WHERE id = ? AND user_id = ?`, jobID, userID)

	var j model.ImportJob
	var completedAt sql.NullTime
	err := row.Scan(&j.ID, &j.UserID, &j.AccountID, &j.Filename, &j.Status,
		&j.Summary.Imported, &j.Summary.Skipped, &j.Summary.Errors, &j.Summary.Total,
		&j.CreatedAt, &completedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding import job: %w", err)
	}
	if completedAt.Valid {
		j.CompletedAt = &completedAt.Time
	}
	return &j, nil
}
