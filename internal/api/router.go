package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/serenedesk/internal/auth"
	"github.com/yourname/serenedesk/internal/config"
)

func NewRouter(app App, provider auth.Provider, cfg *config.Config) *gin.Engine {
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), RequestIDMiddleware(), RequestLogger(app.Logger()))

	r.GET("/healthz", Healthz(app))
	r.GET("/soundscapes", ListSoundscapes(app))
	r.GET("/journal/prompts", ListJournalPrompts(app))

	// Protected routes
	authed := r.Group("/", auth.AuthMiddleware(provider, cfg))
	authed.POST("/sessions", PostSession(app))
	authed.GET("/sessions", ListSessions(app))
	authed.GET("/exports", ListExports(app))
	authed.GET("/exports/:export_id", GetArchivedExport(app))

	s := authed.Group("/sessions/:id", SessionLoader(app))
	s.GET("", GetSession(app))
	s.DELETE("", DeleteSession(app))
	s.POST("/clear", ClearSession(app))
	s.POST("/checkins", PostCheckin(app))
	s.GET("/checkins", ListCheckins(app))
	s.GET("/analytics", GetAnalytics(app))
	s.GET("/triggers", GetTriggers(app))
	s.GET("/recommendation", GetRecommendation(app))
	s.POST("/journal", PostJournal(app))
	s.GET("/journal", GetJournal(app))
	s.DELETE("/journal/:entry_id", DeleteJournalEntry(app))
	s.GET("/settings", GetSettings(app))
	s.PUT("/settings", PutSettings(app))
	s.GET("/export", GetExport(app))
	s.POST("/export", PostExport(app))

	return r
}
