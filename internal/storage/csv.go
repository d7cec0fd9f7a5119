package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"github.com/DanushArun/Yasodha-pg-website/internal/model"
)

// CSVStore is the local durable store: a UTF-8 comma-separated file with
// the canonical header row, created on first use. It is the fallback and
// best-effort mirror for the Google Sheet.
type CSVStore struct {
	path string

	// mu serializes writers so concurrent appends never interleave
	// partial rows, and keeps readers off a half-written file.
	mu sync.Mutex
}

// NewCSVStore creates a CSVStore for the given file path. The file itself
// is created lazily by EnsureInitialized.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// EnsureInitialized creates the file with the canonical header row if and
// only if it does not already exist. It never truncates or rewrites an
// existing file.
func (s *CSVStore) EnsureInitialized(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("csv: stat %s: %w", s.path, err)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("csv: create %s: %w", s.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(model.RecordColumns); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv: flush header: %w", err)
	}
	return nil
}

// Append opens the file in append mode, writes one row with standard CSV
// quoting, flushes and closes.
func (s *CSVStore) Append(_ context.Context, rec model.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("csv: open %s: %w", s.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(rec); err != nil {
		return fmt.Errorf("csv: write row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv: flush row: %w", err)
	}
	return nil
}

// ListColumn reads the whole file and returns the values of one column,
// skipping the header row. Short rows are skipped.
func (s *CSVStore) ListColumn(_ context.Context, col int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("csv: open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: read %s: %w", s.path, err)
	}

	var out []string
	for i, row := range rows {
		if i == 0 || len(row) <= col {
			continue
		}
		out = append(out, row[col])
	}
	return out, nil
}
