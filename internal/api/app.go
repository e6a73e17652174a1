package api

import (
	"github.com/yourname/serenedesk/internal"
	"github.com/yourname/serenedesk/internal/sentiment"
	"github.com/yourname/serenedesk/internal/session"
	"github.com/yourname/serenedesk/internal/storage"
)

type App interface {
	Logger() internal.Logger
	Sessions() *session.Registry
	Analyzer() sentiment.Analyzer
	Exports() storage.ExportRepository
}

// Container is the process-wide App.
type Container struct {
	Log      internal.Logger
	Registry *session.Registry
	Analyze  sentiment.Analyzer
	Archive  storage.ExportRepository
}

func (c *Container) Logger() internal.Logger           { return c.Log }
func (c *Container) Sessions() *session.Registry       { return c.Registry }
func (c *Container) Analyzer() sentiment.Analyzer      { return c.Analyze }
func (c *Container) Exports() storage.ExportRepository { return c.Archive }

var _ App = (*Container)(nil)
