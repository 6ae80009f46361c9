package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/angelglnd-coder/cler-vision-app/internal/importer"
)

// Import ingests an uploaded order workbook and holds the run for the
// later pipeline stages.
// POST /api/orders/import
func (h *Handler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload"})
		return
	}
	defer file.Close()

	result, err := h.coordinator.Import(file, importer.ImportOptions{
		Filename: fileHeader.Filename,
		Sheet:    c.PostForm("sheet"),
	})
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if h.store != nil {
		if err := h.store.CreateRun(result.RunID, result.Filename, result.SchemaName, result.Score, len(result.Rows)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	h.holdRun(result)
	c.JSON(http.StatusOK, result)
}

// GetRun returns a held run.
// GET /api/orders/:id
func (h *Handler) GetRun(c *gin.Context) {
	result, ok := h.run(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	c.JSON(http.StatusOK, result)
}
