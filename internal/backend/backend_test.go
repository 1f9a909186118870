package backend

import (
	"context"
	"path/filepath"
	"testing"

	"kharcha/internal/config"
	"kharcha/internal/store"
)

func TestTypeIsValid(t *testing.T) {
	for _, bt := range []Type{JSONBackend, SQLiteBackend, SheetsBackend, MemoryBackend} {
		if !bt.IsValid() {
			t.Errorf("%s should be valid", bt)
		}
	}
	if Type("csv").IsValid() {
		t.Error("csv should not be valid")
	}
}

func TestCreateStoreJSON(t *testing.T) {
	f := NewFactory(nil)
	cfg := &config.Config{
		DataBackend:  "json",
		ExpensesFile: filepath.Join(t.TempDir(), "expenses.json"),
	}
	s, err := f.CreateStore(context.Background(), cfg)
	if err != nil {
		t.Fatalf("CreateStore: %v", err)
	}
	defer s.Close()
	if _, ok := s.(*store.JSONFile); !ok {
		t.Errorf("expected *store.JSONFile, got %T", s)
	}
}

func TestCreateStoreMemory(t *testing.T) {
	s, err := NewFactory(nil).CreateStore(context.Background(), &config.Config{DataBackend: "memory"})
	if err != nil {
		t.Fatalf("CreateStore: %v", err)
	}
	defer s.Close()
	if _, ok := s.(*store.Memory); !ok {
		t.Errorf("expected *store.Memory, got %T", s)
	}
}

func TestCreateStoreInvalid(t *testing.T) {
	if _, err := NewFactory(nil).CreateStore(context.Background(), &config.Config{DataBackend: "nope"}); err == nil {
		t.Error("expected error for unknown backend")
	}
}
