package storage

import (
	"context"
	"sync"

	"github.com/yourname/serenedesk/internal"
)

// MemoryStorage keeps exports for the life of the process only.
type MemoryStorage struct {
	mu     sync.RWMutex
	byUser map[string][]internal.ExportRecord // oldest first
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{byUser: make(map[string][]internal.ExportRecord)}
}

func (m *MemoryStorage) SaveExport(ctx context.Context, rec *internal.ExportRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byUser[rec.UserID] = append(m.byUser[rec.UserID], *rec)
	return nil
}

func (m *MemoryStorage) ListExports(ctx context.Context, userID string, limit int) ([]internal.ExportRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return newestFirst(m.byUser[userID], limit), nil
}

func (m *MemoryStorage) GetExport(ctx context.Context, userID, id string) (*internal.ExportRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.byUser[userID] {
		if r.ID == id {
			rec := r
			return &rec, nil
		}
	}
	return nil, internal.NewNotFoundError("export", id)
}

func (m *MemoryStorage) Close() error { return nil }

// newestFirst copies recs (stored oldest first) in reverse, keeping at most limit.
func newestFirst(recs []internal.ExportRecord, limit int) []internal.ExportRecord {
	if limit <= 0 || limit > len(recs) {
		limit = len(recs)
	}
	out := make([]internal.ExportRecord, 0, limit)
	for i := len(recs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, recs[i])
	}
	return out
}

var _ ExportRepository = (*MemoryStorage)(nil)
