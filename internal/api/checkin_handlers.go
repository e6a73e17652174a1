package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/serenedesk/internal"
	"github.com/yourname/serenedesk/internal/analytics"
	"github.com/yourname/serenedesk/internal/config"
	"github.com/yourname/serenedesk/internal/service"
)

const (
	defaultTrendLength = 7
	defaultTopTriggers = 10
)

func PostCheckin(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.CheckinRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), internal.NewValidationError("body", err.Error()), "Invalid JSON")
			return
		}

		entry, err := service.SubmitCheckin(c.Request.Context(), app.Analyzer(), currentSession(c), &body)
		if err != nil {
			HandleError(c, app.Logger(), err, "Could not analyze your check-in")
			return
		}

		HandleCreated(c, app.Logger(), entry, map[string]any{
			"mood_band": analytics.MoodBand(entry.MoodScore),
			"analyzer":  app.Analyzer().Name(),
		})
	}
}

// ListCheckins returns the last ?limit= check-ins oldest first; limit=0
// returns all of them.
func ListCheckins(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := queryInt(c, "limit", defaultTrendLength)
		if err != nil {
			HandleError(c, app.Logger(), err, "Invalid limit")
			return
		}
		entries := currentSession(c).RecentCheckins(limit)
		HandleSuccess(c, app.Logger(), entries, map[string]any{
			"count":          len(entries),
			"quick_moods":    config.QuickMoods,
			"quick_energies": config.QuickEnergies,
		})
	}
}

func GetAnalytics(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		window, err := analytics.ParseWindow(c.Query("window"))
		if err != nil {
			HandleError(c, app.Logger(), err, "Invalid window")
			return
		}
		HandleSuccess(c, app.Logger(), service.BuildAnalytics(currentSession(c), window), nil)
	}
}

// GetTriggers returns the ?n= most frequent triggers, 10 by default;
// n=0 returns all of them.
func GetTriggers(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := queryInt(c, "n", defaultTopTriggers)
		if err != nil {
			HandleError(c, app.Logger(), err, "Invalid n")
			return
		}
		HandleSuccess(c, app.Logger(), currentSession(c).TopTriggers(n), nil)
	}
}

func GetRecommendation(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var latest *internal.CheckinEntry
		if e, ok := currentSession(c).LatestCheckin(); ok {
			latest = &e
		}
		HandleSuccess(c, app.Logger(), analytics.RecommendSoundscape(latest), nil)
	}
}
