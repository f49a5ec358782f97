// Package store persists fintrack data in SQLite.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	name       TEXT NOT NULL,
	type       TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_accounts_user ON accounts(user_id);

CREATE TABLE IF NOT EXISTS categories (
	id        TEXT PRIMARY KEY,
	user_id   TEXT,
	name      TEXT NOT NULL,
	keywords  TEXT NOT NULL DEFAULT '',
	is_active INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_categories_user ON categories(user_id);

CREATE TABLE IF NOT EXISTS transactions (
	id            TEXT PRIMARY KEY,
	user_id       TEXT NOT NULL,
	account_id    TEXT NOT NULL REFERENCES accounts(id),
	date          TEXT NOT NULL,
	description   TEXT NOT NULL,
	amount        TEXT NOT NULL,
	type          TEXT NOT NULL,
	balance_after TEXT,
	category_id   TEXT REFERENCES categories(id),
	external_id   TEXT NOT NULL,
	UNIQUE(account_id, external_id)
);
CREATE INDEX IF NOT EXISTS idx_transactions_user_date ON transactions(user_id, date);

CREATE TABLE IF NOT EXISTS import_jobs (
	id           TEXT PRIMARY KEY,
	user_id      TEXT NOT NULL,
	account_id   TEXT NOT NULL,
	filename     TEXT NOT NULL,
	status       TEXT NOT NULL,
	imported     INTEGER NOT NULL DEFAULT 0,
	skipped      INTEGER NOT NULL DEFAULT 0,
	errors       INTEGER NOT NULL DEFAULT 0,
	total        INTEGER NOT NULL DEFAULT 0,
	created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	completed_at TIMESTAMP
);

CREATE TABLE IF NOT EXISTS budgets (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	category_id TEXT NOT NULL REFERENCES categories(id),
	month       TEXT NOT NULL,
	amount      TEXT NOT NULL,
	UNIQUE(user_id, category_id, month)
);
`

// Store bundles the per-entity stores sharing one SQLite database.
type Store struct {
	db *sql.DB

	Accounts     *AccountStore
	Categories   *CategoryStore
	Transactions *TransactionStore
	Jobs         *JobStore
	Budgets      *BudgetStore
}

// Open opens (creating if needed) the SQLite database at path and ensures
// the schema exists. Pass ":memory:" for an ephemeral database.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == ":memory:" {
		// Each pool connection would get its own empty in-memory database.
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	s := &Store{db: db}
	s.Accounts = &AccountStore{db: db}
	s.Categories = &CategoryStore{db: db}
	s.Transactions = &TransactionStore{db: db}
	s.Jobs = &JobStore{db: db}
	s.Budgets = &BudgetStore{db: db}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// nullable maps "" to NULL so optional columns stay NULL instead of empty.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
