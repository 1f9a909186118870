package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"kharcha/internal/core"

	_ "modernc.org/sqlite"
)

// SQLite persists the collection in a local SQLite database. It keeps the
// whole-collection contract: Load reads every row in position order and
// Save replaces the full table in one transaction, so callers see the same
// read-modify-write semantics as the JSON document backend.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Load(ctx context.Context) ([]core.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, amount, description, spent_on FROM expenses ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	defer rows.Close()

	items := []core.Expense{}
	for rows.Next() {
		var (
			e       core.Expense
			spentOn string
		)
		if err := rows.Scan(&e.Category, &e.Amount, &e.Description, &spentOn); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		date, err := core.ParseDate(spentOn)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", spentOn, err)
		}
		e.Date = date
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return items, nil
}

func (s *SQLite) Save(ctx context.Context, items []core.Expense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("clear expenses: %w", err)
	}
	for i, e := range items {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO expenses (position, category, amount, description, spent_on) VALUES (?, ?, ?, ?, ?)`,
			i, e.Category, e.Amount, e.Description, e.Date.String())
		if err != nil {
			return fmt.Errorf("insert expense %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
