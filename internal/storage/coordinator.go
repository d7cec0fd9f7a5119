package storage

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/DanushArun/Yasodha-pg-website/internal/model"
)

// Coordinator orchestrates the two stores: try the Google Sheet first,
// mirror every remote success to the CSV file, and fall back to CSV-only
// when the sheet is unavailable. Callers cannot tell a fallback write
// from a remote one; degraded mode shows up in logs, not in responses.
type Coordinator struct {
	remote RowStore // nil when the sheet was never reachable
	local  RowStore

	// fallback latches true when the remote handle is confirmed
	// unusable; it is never reset for the process lifetime.
	fallback atomic.Bool
}

// NewCoordinator builds a Coordinator. remote may be nil, in which case
// all traffic goes to the local store.
func NewCoordinator(remote, local RowStore) *Coordinator {
	c := &Coordinator{remote: remote, local: local}
	if remote == nil {
		c.fallback.Store(true)
	}
	return c
}

// FallingBack reports whether the coordinator has stopped trying the
// remote store.
func (c *Coordinator) FallingBack() bool {
	return c.fallback.Load()
}

// SaveRecord durably appends one record. Exactly one attempt per store
// per call; no retries. Returns an error only when every available store
// failed.
func (c *Coordinator) SaveRecord(ctx context.Context, rec model.Record) error {
	if c.remote != nil && !c.fallback.Load() {
		if err := c.remote.Append(ctx, rec); err != nil {
			c.noteRemoteFailure(err)
			slog.Warn("sheet append failed, falling back to csv", "error", err)
			return c.local.Append(ctx, rec)
		}
		// Best-effort mirror; its failure does not change the outcome.
		if err := c.local.Append(ctx, rec); err != nil {
			slog.Warn("csv mirror of sheet append failed", "error", err)
		}
		return nil
	}
	return c.local.Append(ctx, rec)
}

// ListEmails returns every stored email address, reading from whichever
// store is currently active.
func (c *Coordinator) ListEmails(ctx context.Context) ([]string, error) {
	if c.remote != nil && !c.fallback.Load() {
		emails, err := c.remote.ListColumn(ctx, model.ColEmail)
		if err == nil {
			return emails, nil
		}
		c.noteRemoteFailure(err)
		slog.Warn("sheet email scan failed, reading csv", "error", err)
	}
	return c.local.ListColumn(ctx, model.ColEmail)
}

// noteRemoteFailure latches the fallback flag on permanent credential
// failures. Transient errors keep the remote in play for later requests.
func (c *Coordinator) noteRemoteFailure(err error) {
	var re *RemoteError
	if errors.As(err, &re) && re.Kind == RemoteAuth {
		if !c.fallback.Swap(true) {
			slog.Error("sheet credentials rejected, csv-only for the rest of this process", "error", err)
		}
	}
}
