package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// AccountStore persists accounts.
type AccountStore struct {
	db *sql.DB
}

// Create inserts an account, assigning an id when none is set.
func (s *AccountStore) Create(ctx context.Context, account model.Account) (*model.Account, error) {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO accounts (id, user_id, name, type) VALUES (?, ?, ?, ?)
		 RETURNING created_at`,
		account.ID, account.UserID, account.Name, account.Type)
	if err := row.Scan(&account.CreatedAt); err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}
	return &account, nil
}

// Find returns the account when it exists and belongs to userID, nil otherwise.
func (s *AccountStore) Find(ctx context.Context, userID, accountID string) (*model.Account, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, type, created_at FROM accounts
		 WHERE id = ? AND user_id = ?`, accountID, userID)

	var a model.Account
	if err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.Type, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding account: %w", err)
	}
	return &a, nil
}

// List returns all of userID's accounts, oldest first.
func (s *AccountStore) List(ctx context.Context, userID string) ([]model.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, name, type, created_at FROM accounts
		 WHERE user_id = ? ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Type, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}
