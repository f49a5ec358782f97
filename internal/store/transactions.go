package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// dateLayout is how transaction dates are stored; lexical order is
// chronological order, so month filters are plain substring matches.
const dateLayout = "2006-01-02"

// TransactionStore persists imported transactions.
type TransactionStore struct {
	db *sql.DB
}

// Exists reports whether the account already holds a transaction with the
// given external id.
func (s *TransactionStore) Exists(ctx context.Context, accountID, externalID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM transactions WHERE account_id = ? AND external_id = ?)`,
		accountID, externalID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking transaction: %w", err)
	}
	return exists, nil
}

// Insert persists a transaction, assigning an id when none is set. The
// UNIQUE(account_id, external_id) constraint rejects duplicates that raced
// past Exists.
func (s *TransactionStore) Insert(ctx context.Context, txn model.Transaction) error {
	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (id, user_id, account_id, date, description, amount, type, balance_after, category_id, external_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		txn.ID, txn.UserID, txn.AccountID, txn.Date.Format(dateLayout),
		txn.Description, txn.Amount, txn.Type,
		nullable(txn.BalanceAfter), nullable(txn.CategoryID), txn.ExternalID)
	if err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}
	return nil
}

// List returns userID's transactions newest first, optionally filtered by
// account and by month ("YYYY-MM").
func (s *TransactionStore) List(ctx context.Context, userID, accountID, month string) ([]model.Transaction, error) {
	query := `SELECT id, user_id, account_id, date, description, amount, type,
	                 COALESCE(balance_after, ''), COALESCE(category_id, ''), external_id
	          FROM transactions WHERE user_id = ?`
	args := []any{userID}
	if accountID != "" {
		query += ` AND account_id = ?`
		args = append(args, accountID)
	}
	if month != "" {
		query += ` AND substr(date, 1, 7) = ?`
		args = append(args, month)
	}
	query += ` ORDER BY date DESC, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txns []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var date string
		if err := rows.Scan(&t.ID, &t.UserID, &t.AccountID, &date, &t.Description,
			&t.Amount, &t.Type, &t.BalanceAfter, &t.CategoryID, &t.ExternalID); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		t.Date, err = time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("parsing stored date %q: %w", date, err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
