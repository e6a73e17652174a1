package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/serenedesk/internal"
	"github.com/yourname/serenedesk/internal/service"
)

func PostJournal(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.JournalRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), internal.NewValidationError("body", err.Error()), "Invalid JSON")
			return
		}

		entry, err := service.CreateJournalEntry(currentSession(c), &body)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to save journal entry")
			return
		}
		HandleCreated(c, app.Logger(), entry, nil)
	}
}

func GetJournal(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), service.BuildJournalHistory(currentSession(c)), nil)
	}
}

func DeleteJournalEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("entry_id")
		if err := currentSession(c).DeleteJournal(id); err != nil {
			HandleError(c, app.Logger(), err, "Journal entry already removed")
			return
		}
		HandleSuccess(c, app.Logger(), nil, map[string]any{"deleted": id})
	}
}
