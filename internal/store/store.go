// Package store holds the durable backends for the expense collection.
//
// Every backend persists the collection as a whole: Load returns the full
// ordered sequence and Save replaces it. There is no partial update; the
// ledger above performs read-modify-write cycles against this contract.
package store

import (
	"context"

	"kharcha/internal/core"
)

// Store loads and saves the complete expense collection.
type Store interface {
	// Load returns the persisted collection in insertion order. An absent
	// backing resource yields an empty collection, not an error.
	Load(ctx context.Context) ([]core.Expense, error)

	// Save persists the entire collection, overwriting prior content.
	// Saving an empty collection is valid and represents "all cleared".
	Save(ctx context.Context, items []core.Expense) error

	// Close releases backend resources.
	Close() error
}
