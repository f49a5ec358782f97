// Package importer runs the CSV import pipeline: parse, dedupe, categorize,
// persist, summarize.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/bankcsv"
	"github.com/fintrack-dev/fintrack/internal/dedup"
	"github.com/fintrack-dev/fintrack/internal/match"
	"github.com/fintrack-dev/fintrack/internal/model"
)

// AccountStore resolves account ownership.
type AccountStore interface {
	// Find returns the account when it exists and belongs to userID,
	// nil otherwise.
	Find(ctx context.Context, userID, accountID string) (*model.Account, error)
}

// CategoryStore provides the user's effective category taxonomy.
type CategoryStore interface {
	// ListEffective returns active global and user-owned categories,
	// globals first.
	ListEffective(ctx context.Context, userID string) ([]model.Category, error)
	// UncategorizedID returns the id of the global "Uncategorized"
	// category, or "" when none has been seeded.
	UncategorizedID(ctx context.Context) (string, error)
}

// TransactionStore persists imported transactions. Insert must reject a
// duplicate (accountID, externalID) pair; the importer treats that as a
// per-row failure.
type TransactionStore interface {
	Exists(ctx context.Context, accountID, externalID string) (bool, error)
	Insert(ctx context.Context, txn model.Transaction) error
}

// JobStore records the import job lifecycle.
type JobStore interface {
	Create(ctx context.Context, job model.ImportJob) (string, error)
	Update(ctx context.Context, jobID string, status model.JobStatus, summary model.ImportSummary) error
}

// ValidationError is a caller-facing failure: the request itself was wrong
// (unknown account, unusable file). It never leaves partial import state.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// RowStatus classifies what happened to one parsed row.
type RowStatus string

const (
	RowImported RowStatus = "imported"
	RowSkipped  RowStatus = "skipped"
	RowFailed   RowStatus = "failed"
)

// RowOutcome records why a row was imported, skipped, or failed, so
// partial-success imports stay observable instead of silently dropping rows.
type RowOutcome struct {
	Row    bankcsv.Row
	Status RowStatus
	Reason string
}

// Result summarizes one import call.
type Result struct {
	JobID    string       `json:"jobId"`
	Imported int          `json:"imported"`
	Skipped  int          `json:"skipped"`
	Errors   int          `json:"errors"`
	Outcomes []RowOutcome `json:"-"`
}

// Service orchestrates imports against the backing stores. Rows are
// processed strictly sequentially within one call; concurrent imports into
// the same account are arbitrated by the transaction store's uniqueness
// constraint.
type Service struct {
	accounts     AccountStore
	categories   CategoryStore
	transactions TransactionStore
	jobs         JobStore
	log          zerolog.Logger
}

// NewService creates an import Service.
func NewService(accounts AccountStore, categories CategoryStore, transactions TransactionStore, jobs JobStore, log zerolog.Logger) *Service {
	return &Service{
		accounts:     accounts,
		categories:   categories,
		transactions: transactions,
		jobs:         jobs,
		log:          log,
	}
}

// ImportCSV imports a bank CSV export into an account owned by userID.
// Account and format problems surface as *ValidationError before any job
// record exists. Once a job exists the caller always gets either a result
// summary or an error after the job was marked failed.
func (s *Service) ImportCSV(ctx context.Context, userID, accountID, filename string, r io.Reader) (*Result, error) {
	account, err := s.accounts.Find(ctx, userID, accountID)
	if err != nil {
		return nil, fmt.Errorf("looking up account: %w", err)
	}
	if account == nil {
		return nil, &ValidationError{Message: "Account not found"}
	}

	rows, err := bankcsv.Parse(r)
	if err != nil {
		var formatErr *bankcsv.FormatError
		if errors.As(err, &formatErr) {
			return nil, &ValidationError{Message: formatErr.Message}
		}
		return nil, err
	}

	jobID, err := s.jobs.Create(ctx, model.ImportJob{
		UserID:    userID,
		AccountID: accountID,
		Filename:  filename,
		Status:    model.JobProcessing,
	})
	if err != nil {
		return nil, fmt.Errorf("creating import job: %w", err)
	}

	result := &Result{JobID: jobID}
	if err := s.processRows(ctx, userID, accountID, rows, result); err != nil {
		if updateErr := s.jobs.Update(ctx, jobID, model.JobFailed, summaryOf(result, len(rows))); updateErr != nil {
			s.log.Error().Err(updateErr).Str("job_id", jobID).Msg("marking import job failed")
		}
		return nil, err
	}

	if err := s.jobs.Update(ctx, jobID, model.JobCompleted, summaryOf(result, len(rows))); err != nil {
		return nil, fmt.Errorf("completing import job: %w", err)
	}

	s.log.Info().
		Str("job_id", jobID).
		Int("imported", result.Imported).
		Int("skipped", result.Skipped).
		Int("errors", result.Errors).
		Msg("import completed")
	return result, nil
}

// processRows runs the per-row pipeline. The category index is built once
// up front; each row is deduped, categorized, and persisted in turn. A
// returned error is a pipeline failure; row-level persistence failures are
// counted and do not stop the loop.
func (s *Service) processRows(ctx context.Context, userID, accountID string, rows []bankcsv.Row, result *Result) error {
	categories, err := s.categories.ListEffective(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading categories: %w", err)
	}
	idx := match.BuildIndex(categories)

	fallbackID, err := s.categories.UncategorizedID(ctx)
	if err != nil {
		return fmt.Errorf("resolving fallback category: %w", err)
	}

	for _, row := range rows {
		externalID := dedup.ExternalID(accountID, row)

		exists, err := s.transactions.Exists(ctx, accountID, externalID)
		if err != nil {
			return fmt.Errorf("checking duplicate %s: %w", externalID, err)
		}
		if exists {
			result.Skipped++
			result.Outcomes = append(result.Outcomes, RowOutcome{Row: row, Status: RowSkipped, Reason: "already imported"})
			continue
		}

		txn := model.Transaction{
			UserID:       userID,
			AccountID:    accountID,
			Date:         row.Date,
			Description:  row.Description,
			Amount:       row.Amount,
			Type:         transactionType(row),
			BalanceAfter: row.Balance,
			CategoryID:   resolveCategory(idx, fallbackID, row),
			ExternalID:   externalID,
		}
		if err := s.transactions.Insert(ctx, txn); err != nil {
			result.Errors++
			result.Outcomes = append(result.Outcomes, RowOutcome{Row: row, Status: RowFailed, Reason: err.Error()})
			s.log.Warn().Err(err).Str("external_id", externalID).Msg("persisting imported row")
			continue
		}
		result.Imported++
		result.Outcomes = append(result.Outcomes, RowOutcome{Row: row, Status: RowImported})
	}
	return nil
}

// resolveCategory picks the category for a row. A bank-supplied label is
// authoritative: when it matches nothing the row goes to Uncategorized
// without consulting the description. Only label-less rows are matched on
// their description.
func resolveCategory(idx *match.Index, fallbackID string, row bankcsv.Row) string {
	if row.Category != "" {
		if id := idx.Match(row.Category); id != "" {
			return id
		}
		return fallbackID
	}
	if id := idx.Match(row.Description); id != "" {
		return id
	}
	return fallbackID
}

// transactionType uses the export's type when present, otherwise derives it
// from the amount's sign.
func transactionType(row bankcsv.Row) string {
	if row.Type != "" {
		return row.Type
	}
	amount, err := decimal.NewFromString(row.Amount)
	if err == nil && amount.IsNegative() {
		return "debit"
	}
	return "credit"
}

func summaryOf(result *Result, total int) model.ImportSummary {
	return model.ImportSummary{
		Imported: result.Imported,
		Skipped:  result.Skipped,
		Errors:   result.Errors,
		Total:    total,
	}
}
