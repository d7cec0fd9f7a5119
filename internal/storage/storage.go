package storage

import (
	"context"

	"github.com/DanushArun/Yasodha-pg-website/internal/model"
)

// RowStore is an append-only tabular store with a fixed header row.
// Implemented by the Google Sheets worksheet and the local CSV fallback
// file; tests substitute in-memory fakes.
type RowStore interface {
	// EnsureInitialized makes sure the store exists and its header row
	// equals model.RecordColumns. Idempotent.
	EnsureInitialized(ctx context.Context) error

	// Append writes exactly one row. Rows from concurrent callers may
	// land in either order but are never split.
	Append(ctx context.Context, rec model.Record) error

	// ListColumn returns the values of one column, skipping the header
	// row. Scans the whole table each call; acceptable at the table
	// sizes a guesthouse inbox sees.
	ListColumn(ctx context.Context, col int) ([]string, error)
}
