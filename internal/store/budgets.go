package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// BudgetStore persists monthly category budgets.
type BudgetStore struct {
	db *sql.DB
}

// Set creates or replaces the budget for one category-month.
func (s *BudgetStore) Set(ctx context.Context, budget model.Budget) (*model.Budget, error) {
	if budget.ID == "" {
		budget.ID = uuid.NewString()
	}
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO budgets (id, user_id, category_id, month, amount) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(user_id, category_id, month) DO UPDATE SET amount = excluded.amount
		 RETURNING id`,
		budget.ID, budget.UserID, budget.CategoryID, budget.Month, budget.Amount)
	if err := row.Scan(&budget.ID); err != nil {
		return nil, fmt.Errorf("setting budget: %w", err)
	}
	return &budget, nil
}

// ListMonth returns userID's budgets for one month.
func (s *BudgetStore) ListMonth(ctx context.Context, userID, month string) ([]model.Budget, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, category_id, month, amount FROM budgets
		 WHERE user_id = ? AND month = ? ORDER BY category_id`, userID, month)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	defer rows.Close()

	var budgets []model.Budget
	for rows.Next() {
		var b model.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Month, &b.Amount); err != nil {
			return nil, fmt.Errorf("scanning budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}
