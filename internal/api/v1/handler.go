package v1

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/angelglnd-coder/cler-vision-app/internal/importer"
	"github.com/angelglnd-coder/cler-vision-app/internal/store"
)

// Handler serves the order-pipeline API.
type Handler struct {
	store       *store.Store
	coordinator *importer.Coordinator

	// Held import runs between the import and the later pipeline calls.
	runs   map[string]*importer.Result
	runsMu sync.RWMutex

	// Serializes number generation so two batches cannot snapshot the
	// same authority state.
	generateMu sync.Mutex
}

// NewHandler creates the API handler.
func NewHandler(s *store.Store, c *importer.Coordinator) *Handler {
	return &Handler{
		store:       s,
		coordinator: c,
		runs:        make(map[string]*importer.Result),
	}
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)

	router.POST("/orders/import", h.Import)
	router.GET("/orders/:id", h.GetRun)
	router.POST("/orders/:id/numbers", h.GenerateNumbers)
	router.POST("/orders/:id/files", h.GenerateFiles)

	router.GET("/workorders/next-number", h.NextNumber)
	router.POST("/workorders/reprint", h.Reprint)
}

func (h *Handler) holdRun(result *importer.Result) {
	h.runsMu.Lock()
	defer h.runsMu.Unlock()
	h.runs[result.RunID] = result
}

func (h *Handler) run(id string) (*importer.Result, bool) {
	h.runsMu.RLock()
	defer h.runsMu.RUnlock()
	r, ok := h.runs[id]
	return r, ok
}
