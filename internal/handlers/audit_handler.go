package handlers

import (
	"net/http"

	"eyetrends-pos/internal/database"

	"github.com/gin-gonic/gin"
)

// ListAuditLogs returns the trace, most recent first. Admin-only route.
func ListAuditLogs(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		logs, err := database.AuditLogs(c.Request.Context(), store)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, logs)
	}
}
