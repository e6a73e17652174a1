package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yourname/serenedesk/internal"
	"github.com/yourname/serenedesk/internal/service"
)

// GetExport streams the snapshot as a JSON attachment, without the
// response envelope.
func GetExport(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := currentSession(c)
		snap := st.Export()
		c.Header("Content-Disposition", `attachment; filename="`+service.ExportFilename(st.Now())+`"`)
		c.JSON(http.StatusOK, snap)
	}
}

// PostExport archives the snapshot; with ?reset=true the session is
// cleared after a successful save.
func PostExport(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		reset := false
		if raw := c.Query("reset"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				HandleError(c, app.Logger(), internal.NewValidationError("reset", "must be true or false"), "Invalid reset flag")
				return
			}
			reset = v
		}

		st := currentSession(c)
		rec, err := service.ArchiveExport(c.Request.Context(), app.Exports(), st, currentUser(c), reset)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to archive export")
			return
		}
		HandleCreated(c, app.Logger(), rec, map[string]any{
			"reset":    reset,
			"filename": service.ExportFilename(rec.CreatedAt),
		})
	}
}

func ListExports(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := queryInt(c, "limit", 0)
		if err != nil {
			HandleError(c, app.Logger(), err, "Invalid limit")
			return
		}
		recs, err := app.Exports().ListExports(c.Request.Context(), currentUser(c).ID, limit)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to fetch exports")
			return
		}
		HandleSuccess(c, app.Logger(), recs, map[string]any{"count": len(recs)})
	}
}

func GetArchivedExport(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := app.Exports().GetExport(c.Request.Context(), currentUser(c).ID, c.Param("export_id"))
		if err != nil {
			HandleError(c, app.Logger(), err, "Export unavailable")
			return
		}
		HandleSuccess(c, app.Logger(), rec, nil)
	}
}
