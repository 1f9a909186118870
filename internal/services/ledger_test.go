package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"kharcha/internal/core"
	"kharcha/internal/store"
)

func newTestLedger() *Ledger {
	return NewLedger(store.NewMemory())
}

func TestAddThenCount(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()

	const n = 5
	for i := 0; i < n; i++ {
		_, err := l.Add(ctx, "food", float64(10+i), fmt.Sprintf("meal number %d", i), core.NewDate(2024, 1, i+1))
		if err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	items, err := l.Snapshot(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != n {
		t.Errorf("count = %d, want %d", len(items), n)
	}
	if items[0].Category != "Food" {
		t.Errorf("category not capitalized: %q", items[0].Category)
	}
}

func TestAddValidationWritesNothing(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()

	cases := []struct {
		category    string
		amount      float64
		description string
		wantErr     error
	}{
		{"", 10, "valid description", core.ErrEmptyCategory},
		{"Food1", 10, "valid description", core.ErrCategoryFormat},
		{"Food", 0, "valid description", core.ErrAmountRange},
		{"Food", -5, "valid description", core.ErrAmountRange},
		{"Food", 10, "", core.ErrEmptyDescription},
		{"Food", 10, "abc", core.ErrDescriptionShort},
	}
	for _, tc := range cases {
		_, err := l.Add(ctx, tc.category, tc.amount, tc.description, core.Today())
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("Add(%q, %v, %q) = %v, want %v", tc.category, tc.amount, tc.description, err, tc.wantErr)
		}
	}

	items, err := l.Snapshot(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Errorf("rejected adds must not persist, found %d items", len(items))
	}
}

func TestDeleteAtBounds(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()

	for i := 0; i < 3; i++ {
		if _, err := l.Add(ctx, "food", 10, fmt.Sprintf("meal number %d", i), core.NewDate(2024, 1, i+1)); err != nil {
			t.Fatal(err)
		}
	}

	for _, idx := range []int{-1, 3, 100} {
		if _, err := l.DeleteAt(ctx, idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("DeleteAt(%d) = %v, want ErrIndexOutOfRange", idx, err)
		}
	}

	removed, err := l.DeleteAt(ctx, 1)
	if err != nil {
		t.Fatalf("DeleteAt(1): %v", err)
	}
	if removed.Description != "meal number 1" {
		t.Errorf("removed %q, want the middle element", removed.Description)
	}

	items, err := l.Snapshot(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("size = %d, want 2", len(items))
	}
	if items[0].Description != "meal number 0" || items[1].Description != "meal number 2" {
		t.Errorf("wrong survivors: %q, %q", items[0].Description, items[1].Description)
	}
}

func TestClearAllIdempotent(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()

	if _, err := l.Add(ctx, "food", 10, "lunch today", core.Today()); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if err := l.ClearAll(ctx); err != nil {
			t.Fatalf("clear %d: %v", i, err)
		}
		items, err := l.Snapshot(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(items) != 0 {
			t.Errorf("clear %d: %d items remain", i, len(items))
		}
	}
}

type failingStore struct {
	store.Store
	saveErr error
}

func (f *failingStore) Save(ctx context.Context, items []core.Expense) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	return f.Store.Save(ctx, items)
}

func TestAddPropagatesSaveError(t *testing.T) {
	boom := errors.New("disk full")
	l := NewLedger(&failingStore{Store: store.NewMemory(), saveErr: boom})
	if _, err := l.Add(context.Background(), "food", 10, "lunch today", core.Today()); !errors.Is(err, boom) {
		t.Errorf("expected wrapped save error, got %v", err)
	}
}
