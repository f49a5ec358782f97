package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// keywordSeparator joins a category's keywords into one column. Keywords
// are merchant fragments and never contain semicolons.
const keywordSeparator = ";"

// CategoryStore persists categories. Rows with a NULL user_id are global
// defaults shared by every user.
type CategoryStore struct {
	db *sql.DB
}

// Create inserts a user-owned category.
func (s *CategoryStore) Create(ctx context.Context, category model.Category) (*model.Category, error) {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	category.IsActive = true
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (id, user_id, name, keywords, is_active) VALUES (?, ?, ?, ?, 1)`,
		category.ID, category.UserID, category.Name, joinKeywords(category.Keywords))
	if err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}
	return &category, nil
}

// SeedDefaults inserts the given categories as global defaults, skipping
// any whose name already exists globally. Safe to run on every startup.
func (s *CategoryStore) SeedDefaults(ctx context.Context, defaults []model.Category) error {
	for _, c := range defaults {
		var exists bool
		err := s.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM categories WHERE user_id IS NULL AND name = ?)`,
			c.Name).Scan(&exists)
		if err != nil {
			return fmt.Errorf("checking default category %q: %w", c.Name, err)
		}
		if exists {
			continue
		}
		id := c.ID
		if id == "" {
			id = uuid.NewString()
		}
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO categories (id, user_id, name, keywords, is_active) VALUES (?, NULL, ?, ?, 1)`,
			id, c.Name, joinKeywords(c.Keywords))
		if err != nil {
			return fmt.Errorf("seeding category %q: %w", c.Name, err)
		}
	}
	return nil
}

// ListEffective returns the active categories visible to userID: global
// defaults first, then the user's own, so user-owned names take precedence
// in matching.
func (s *CategoryStore) ListEffective(ctx context.Context, userID string) ([]model.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, COALESCE(user_id, ''), name, keywords, is_active FROM categories
		 WHERE is_active = 1 AND (user_id IS NULL OR user_id = ?)
		 ORDER BY user_id IS NULL DESC, name`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		var keywords string
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &keywords, &c.IsActive); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		c.Keywords = splitKeywords(keywords)
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// UncategorizedID returns the id of the global Uncategorized category, or
// "" when it has not been seeded.
func (s *CategoryStore) UncategorizedID(ctx context.Context) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM categories WHERE user_id IS NULL AND name = 'Uncategorized'`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("finding Uncategorized: %w", err)
	}
	return id, nil
}

func joinKeywords(keywords []string) string {
	return strings.Join(keywords, keywordSeparator)
}

func splitKeywords(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, keywordSeparator)
}
