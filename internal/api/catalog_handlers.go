package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/serenedesk/internal"
	"github.com/yourname/serenedesk/internal/config"
)

func Healthz(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), gin.H{"status": "ok"}, map[string]any{
			"analyzer": app.Analyzer().Name(),
			"sessions": app.Sessions().Len(),
		})
	}
}

func ListSoundscapes(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), config.Soundscapes, nil)
	}
}

func ListJournalPrompts(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), config.JournalPrompts, map[string]any{
			"free_writing": internal.FreeWritingPrompt,
		})
	}
}
