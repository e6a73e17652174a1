package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/serenedesk/internal"
	"github.com/yourname/serenedesk/internal/config"
	"github.com/yourname/serenedesk/internal/service"
)

func GetSettings(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), currentSession(c).Settings(), map[string]any{
			"reminder_frequencies":  config.ReminderFrequencies,
			"focus_session_lengths": config.FocusSessionLengths,
		})
	}
}

// PutSettings stores notification preferences. Nothing schedules them.
func PutSettings(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.SettingsRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), internal.NewValidationError("body", err.Error()), "Invalid JSON")
			return
		}

		st, err := service.UpdateSettings(currentSession(c), &body)
		if err != nil {
			HandleError(c, app.Logger(), err, "Settings validation failed")
			return
		}
		HandleSuccess(c, app.Logger(), st, nil)
	}
}
