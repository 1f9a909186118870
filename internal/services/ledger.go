// Package services holds the ledger, the mutation surface over the stored
// expense collection.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"kharcha/internal/core"
	"kharcha/internal/store"
)

// ErrIndexOutOfRange reports a positional delete outside the collection.
var ErrIndexOutOfRange = errors.New("expense index out of range")

// Ledger performs every mutation as a full load-modify-save cycle against
// the store. One successful mutation triggers exactly one save.
type Ledger struct {
	store store.Store
}

func NewLedger(s store.Store) *Ledger {
	return &Ledger{store: s}
}

// Add validates the raw fields (category, then amount, then description,
// first failure wins), normalizes them and appends the expense. Nothing is
// written when validation fails.
func (l *Ledger) Add(ctx context.Context, category string, amount float64, description string, date core.Date) (core.Expense, error) {
	e, err := core.NewExpense(category, amount, description, date)
	if err != nil {
		return core.Expense{}, err
	}

	items, err := l.store.Load(ctx)
	if err != nil {
		return core.Expense{}, fmt.Errorf("load expenses: %w", err)
	}
	items = append(items, e)
	if err := l.store.Save(ctx, items); err != nil {
		return core.Expense{}, fmt.Errorf("save expenses: %w", err)
	}

	slog.InfoContext(ctx, "Expense added",
		"category", e.Category,
		"amount", e.Amount,
		"date", e.Date.String(),
		"count", len(items))
	return e, nil
}

// DeleteAt removes the expense at the given zero-based load-order position
// and returns it. An out-of-range index fails with ErrIndexOutOfRange and
// never silently no-ops.
func (l *Ledger) DeleteAt(ctx context.Context, index int) (core.Expense, error) {
	items, err := l.store.Load(ctx)
	if err != nil {
		return core.Expense{}, fmt.Errorf("load expenses: %w", err)
	}
	if index < 0 || index >= len(items) {
		return core.Expense{}, fmt.Errorf("delete position %d of %d: %w", index, len(items), ErrIndexOutOfRange)
	}

	removed := items[index]
	items = append(items[:index], items[index+1:]...)
	if err := l.store.Save(ctx, items); err != nil {
		return core.Expense{}, fmt.Errorf("save expenses: %w", err)
	}

	slog.InfoContext(ctx, "Expense deleted",
		"index", index,
		"category", removed.Category,
		"amount", removed.Amount,
		"remaining", len(items))
	return removed, nil
}

// ClearAll discards every record unconditionally by persisting an empty
// collection. The two-step confirmation belongs to the caller, not here.
func (l *Ledger) ClearAll(ctx context.Context) error {
	if err := l.store.Save(ctx, []core.Expense{}); err != nil {
		return fmt.Errorf("save expenses: %w", err)
	}
	slog.InfoContext(ctx, "All expenses cleared")
	return nil
}

// Snapshot returns the current collection in insertion order.
func (l *Ledger) Snapshot(ctx context.Context) ([]core.Expense, error) {
	items, err := l.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	return items, nil
}

// Close releases the underlying store.
func (l *Ledger) Close() error {
	if l.store != nil {
		return l.store.Close()
	}
	return nil
}
