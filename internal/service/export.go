package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yourname/serenedesk/internal"
	"github.com/yourname/serenedesk/internal/session"
	"github.com/yourname/serenedesk/internal/storage"
)

// ExportFilename is the download name for a snapshot taken at t.
func ExportFilename(t time.Time) string {
	return "serenedesk_data_" + t.Format("20060102") + ".json"
}

// ArchiveExport saves the session snapshot to repo. With reset set the
// session is cleared in the same critical section, and only when the save
// succeeded.
func ArchiveExport(ctx context.Context, repo storage.ExportRepository, store *session.Store, user *internal.User, reset bool) (*internal.ExportRecord, error) {
	newRecord := func(snap internal.Snapshot) *internal.ExportRecord {
		return &internal.ExportRecord{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			SessionID: store.ID,
			CreatedAt: store.Now(),
			Snapshot:  snap,
		}
	}

	if !reset {
		rec := newRecord(store.Export())
		if err := repo.SaveExport(ctx, rec); err != nil {
			return nil, err
		}
		return rec, nil
	}

	var rec *internal.ExportRecord
	_, err := store.ExportAndReset(func(snap internal.Snapshot) error {
		rec = newRecord(snap)
		return repo.SaveExport(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}
