package storage

import (
	"fmt"

	"github.com/yourname/serenedesk/internal"
	"github.com/yourname/serenedesk/internal/config"
)

// NewExportRepository picks the backend named by cfg.ExportBackend.
func NewExportRepository(cfg *config.Config, logger internal.Logger) (ExportRepository, error) {
	switch cfg.ExportBackend {
	case "memory":
		return NewMemoryStorage(), nil
	case "file":
		return NewFileStorage(cfg.ExportFile, logger)
	case "postgres":
		return NewPostgresStorage(cfg.PostgresDSN, logger)
	}
	return nil, fmt.Errorf("storage: unknown export backend %q", cfg.ExportBackend)
}
