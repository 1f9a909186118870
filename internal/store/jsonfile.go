package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"kharcha/internal/core"
)

// JSONFile persists the collection as a single JSON document: an ordered
// array of expense objects. This is the default backend and matches the
// on-disk format the tracker has always used.
type JSONFile struct {
	path string
	mu   sync.Mutex
}

func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Load reads the document. A missing file loads as an empty collection, and
// so does a malformed one: corruption is treated as "no data yet" rather
// than failing every caller. The parse error is logged so the loss is not
// completely invisible.
func (s *JSONFile) Load(ctx context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []core.Expense{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []core.Expense
	if err := json.Unmarshal(b, &items); err != nil {
		slog.WarnContext(ctx, "Expense file is malformed, treating as empty",
			"path", s.path, "error", err)
		return []core.Expense{}, nil
	}
	if items == nil {
		items = []core.Expense{}
	}
	return items, nil
}

// Save writes the whole document via a temp file and rename, creating the
// parent directory if needed. Readers never observe a partial write.
func (s *JSONFile) Save(ctx context.Context, items []core.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if items == nil {
		items = []core.Expense{}
	}
	b, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *JSONFile) Close() error { return nil }
