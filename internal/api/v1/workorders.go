package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/angelglnd-coder/cler-vision-app/internal/importer"
	"github.com/angelglnd-coder/cler-vision-app/internal/workorder"
)

// GenerateNumbers assigns work-order numbers to a held run and persists
// the batch.
// POST /api/orders/:id/numbers
func (h *Handler) GenerateNumbers(c *gin.Context) {
	result, ok := h.run(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}

	h.generateMu.Lock()
	defer h.generateMu.Unlock()

	if err := h.coordinator.GenerateNumbers(result); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	saved := 0
	if h.store != nil {
		var err error
		saved, err = h.store.SaveBatch(result.RunID, result.SchemaName, result.Rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := h.store.FinishRun(result.RunID, len(result.Rows)-saved, "completed", ""); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"runId":       result.RunID,
		"saved":       saved,
		"rows":        result.Rows,
		"diagnostics": result.Diagnostics,
	})
}

type filesRequest struct {
	QueueName string   `json:"queueName"`
	Thickness *float64 `json:"thickness"`
}

// GenerateFiles emits the queue index and cut files for a held run.
// POST /api/orders/:id/files
func (h *Handler) GenerateFiles(c *gin.Context) {
	result, ok := h.run(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}

	var req filesRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	opts := importer.EmitOptions{QueueName: req.QueueName}
	if req.Thickness != nil {
		opts.Thickness = *req.Thickness
		opts.HasThickness = true
	}

	pair, err := h.coordinator.Emit(result, opts)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pair)
}

// NextNumber reports the authority state for one account.
// GET /api/workorders/next-number?prefix=003
func (h *Handler) NextNumber(c *gin.Context) {
	prefix := c.Query("prefix")
	if prefix == "" {
		prefix = c.Query("account")
	}
	account := workorder.NormalizeAccount(prefix)
	if account == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account is required"})
		return
	}
	resp, err := h.store.NextNumber(account)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

type reprintRequest struct {
	Previous string `json:"previous"`
}

// Reprint bumps the print count of an existing work-order number.
// POST /api/workorders/reprint
func (h *Handler) Reprint(c *gin.Context) {
	var req reprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	next, err := workorder.GenerateReprint(req.Previous)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"workOrderNumber": next})
}
