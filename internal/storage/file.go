package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/yourname/serenedesk/internal"
)

// FileStorage keeps exports in memory and flushes them to a single JSON
// file. Writes are debounced by a background worker and replace the file
// atomically.
type FileStorage struct {
	byUser       map[string][]*internal.ExportRecord // userID -> exports, oldest first
	mu           sync.RWMutex
	saveMu       sync.Mutex // serializes writers of exportsFile
	exportsFile  string
	saveChan     chan struct{}
	shutdownChan chan struct{}
	closeOnce    sync.Once
	saveDelay    time.Duration
	logger       internal.Logger
}

func NewFileStorage(exportsFile string, logger internal.Logger) (*FileStorage, error) {
	if dir := filepath.Dir(exportsFile); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	s := &FileStorage{
		byUser:       make(map[string][]*internal.ExportRecord),
		exportsFile:  exportsFile,
		saveChan:     make(chan struct{}, 1),
		shutdownChan: make(chan struct{}),
		saveDelay:    500 * time.Millisecond,
		logger:       logger,
	}

	if err := s.loadExports(); err != nil {
		logger.Errorf("storage: failed to load exports: %v", err)
		return nil, err
	}

	go s.saveWorker()

	return s, nil
}

func (s *FileStorage) loadExports() error {
	file, err := os.Open(s.exportsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var recs []*internal.ExportRecord
	if err := json.NewDecoder(file).Decode(&recs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].CreatedAt.Before(recs[j].CreatedAt)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range recs {
		s.byUser[r.UserID] = append(s.byUser[r.UserID], r)
	}
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) saveExports() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	recs := make([]*internal.ExportRecord, 0)
	for _, list := range s.byUser {
		recs = append(recs, list...)
	}
	s.mu.RUnlock()

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].CreatedAt.Before(recs[j].CreatedAt)
	})
	return atomicWriteFileJSON(s.exportsFile, recs)
}

func (s *FileStorage) saveWorker() {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	for {
		select {
		case <-s.saveChan:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := s.saveExports(); err != nil {
				s.logger.Errorf("storage: error saving exports: %v", err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

// Flush writes the current state synchronously.
func (s *FileStorage) Flush() error {
	return s.saveExports()
}

// Close stops the worker and flushes pending data.
func (s *FileStorage) Close() error {
	s.closeOnce.Do(func() { close(s.shutdownChan) })
	return s.saveExports()
}

// --- ExportRepository ---
func (s *FileStorage) SaveExport(ctx context.Context, rec *internal.ExportRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *rec
	s.byUser[rec.UserID] = append(s.byUser[rec.UserID], &cp)
	select {
	case s.saveChan <- struct{}{}:
	default:
	}
	return nil
}

func (s *FileStorage) ListExports(ctx context.Context, userID string, limit int) ([]internal.ExportRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.byUser[userID]
	recs := make([]internal.ExportRecord, len(list))
	for i, r := range list {
		recs[i] = *r
	}
	return newestFirst(recs, limit), nil
}

func (s *FileStorage) GetExport(ctx context.Context, userID, id string) (*internal.ExportRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.byUser[userID] {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, internal.NewNotFoundError("export", id)
}

// --- Compile-time assertions ---
var _ ExportRepository = (*FileStorage)(nil)
