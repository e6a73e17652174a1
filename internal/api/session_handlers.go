package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/serenedesk/internal/service"
)

func PostSession(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		st := app.Sessions().Create(user.ID)
		app.Logger().Infof("[request_id=%s] session %s created for user %s", c.GetString("request_id"), st.ID, user.ID)
		HandleCreated(c, app.Logger(), service.BuildOverview(st), nil)
	}
}

func ListSessions(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		stores := app.Sessions().ListByUser(currentUser(c).ID)
		out := make([]service.SessionOverview, 0, len(stores))
		for _, st := range stores {
			out = append(out, service.BuildOverview(st))
		}
		HandleSuccess(c, app.Logger(), out, map[string]any{"count": len(out)})
	}
}

func GetSession(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), service.BuildOverview(currentSession(c)), nil)
	}
}

func DeleteSession(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := app.Sessions().Delete(c.Param("id"), currentUser(c).ID); err != nil {
			HandleError(c, app.Logger(), err, "Failed to delete session")
			return
		}
		HandleSuccess(c, app.Logger(), nil, map[string]any{"deleted": c.Param("id")})
	}
}

// ClearSession empties check-ins, journal and triggers. Settings survive.
func ClearSession(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := currentSession(c)
		st.ClearAll()
		HandleSuccess(c, app.Logger(), service.BuildOverview(st), nil)
	}
}
