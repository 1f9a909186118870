// Package backend selects and constructs the configured record store.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"kharcha/internal/config"
	"kharcha/internal/store"
	"kharcha/internal/store/gsheet"
)

// Type represents the kind of record store backing the ledger.
type Type string

const (
	JSONBackend   Type = "json"
	SQLiteBackend Type = "sqlite"
	SheetsBackend Type = "sheets"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case JSONBackend, SQLiteBackend, SheetsBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Factory creates record stores from application config.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// CreateStore builds the store named by cfg.DataBackend.
func (f *Factory) CreateStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	t := Type(cfg.DataBackend)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	switch t {
	case JSONBackend:
		f.logger.Info("Initialized JSON document backend", "path", cfg.ExpensesFile)
		return store.NewJSONFile(cfg.ExpensesFile), nil

	case SQLiteBackend:
		s, err := store.NewSQLite(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return s, nil

	case SheetsBackend:
		cli, err := gsheet.New(ctx, gsheet.Config{
			SpreadsheetID:   cfg.GoogleSpreadsheetID,
			SheetName:       cfg.GoogleSheetName,
			CredentialsJSON: cfg.GoogleServiceAccountJSON,
			CredentialsFile: cfg.GoogleServiceAccountFile,
		})
		if err != nil {
			return nil, fmt.Errorf("initialize sheets backend: %w", err)
		}
		f.logger.Info("Initialized Google Sheets backend",
			"spreadsheet_id", cfg.GoogleSpreadsheetID,
			"sheet", cfg.GoogleSheetName)
		return cli, nil

	default:
		f.logger.Info("Initialized memory backend")
		return store.NewMemory(), nil
	}
}
