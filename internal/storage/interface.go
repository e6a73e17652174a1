package storage

import (
	"context"

	"github.com/yourname/serenedesk/internal"
)

// ExportRepository archives session snapshots.
type ExportRepository interface {
	SaveExport(ctx context.Context, rec *internal.ExportRecord) error
	// ListExports returns the user's exports, newest first. limit <= 0 means all.
	ListExports(ctx context.Context, userID string, limit int) ([]internal.ExportRecord, error)
	GetExport(ctx context.Context, userID, id string) (*internal.ExportRecord, error)
	Close() error
}
