package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStatus reports service health.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	h.runsMu.RLock()
	held := len(h.runs)
	h.runsMu.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"heldRuns": held,
	})
}
