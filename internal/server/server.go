package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/angelglnd-coder/cler-vision-app/internal/api/v1"
	"github.com/angelglnd-coder/cler-vision-app/internal/calc"
	"github.com/angelglnd-coder/cler-vision-app/internal/config"
	"github.com/angelglnd-coder/cler-vision-app/internal/importer"
	"github.com/angelglnd-coder/cler-vision-app/internal/schema"
	"github.com/angelglnd-coder/cler-vision-app/internal/store"
)

// Server is the HTTP front of the order pipeline.
type Server struct {
	router *gin.Engine
	store  *store.Store
	v1     *v1.Handler
}

// NewServer wires the store, pipeline and routes.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	sqliteStore, err := store.New(config.DBPath(cfg))
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	coordinator := importer.NewCoordinator(schema.NewRegistry(), calc.NewRegistry(), sqliteStore)
	handler := v1.NewHandler(sqliteStore, coordinator)

	s := &Server{
		router: gin.Default(),
		store:  sqliteStore,
		v1:     handler,
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api")
	{
		s.v1.RegisterRoutes(api)
	}

	s.router.GET("/api/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases the store.
func (s *Server) Close() error {
	return s.store.Close()
}

// GetStore exposes the store for tests.
func (s *Server) GetStore() *store.Store {
	return s.store
}
