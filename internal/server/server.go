package server

import (
	"log/slog"
	"net/http"

	"github.com/alkime/wavegen/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server represents the HTTP server
type Server struct {
	config *config.Config
	logger *slog.Logger
	router *gin.Engine

	registry        *prometheus.Registry
	samplesRendered *prometheus.CounterVec
}

// New creates a new Server instance
func New(cfg *config.Config, logger *slog.Logger) *Server {
	// Set Gin mode based on environment
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	registry := prometheus.NewRegistry()
	samplesRendered := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wavegen",
		Name:      "samples_rendered_total",
		Help:      "Number of samples rendered, by wave shape.",
	}, []string{"shape"})
	registry.MustRegister(samplesRendered)

	server := &Server{
		config:          cfg,
		logger:          logger,
		router:          router,
		registry:        registry,
		samplesRendered: samplesRendered,
	}

	// Setup middleware and routes
	setupSecurityMiddleware(router, cfg, logger)
	server.setupRoutes()

	return server
}

// Run starts the HTTP server
func Run(s *Server) error {
	s.logger.Info("Server listening", "port", s.config.Port)
	return s.router.Run(":" + s.config.Port)
}

// Router exposes the underlying handler, mostly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	api := s.router.Group("/api/v1")
	{
		api.GET("/wave/:shape", s.handleWave)
		api.GET("/tone/:shape", s.handleTone)
		api.GET("/note/:note/:octave", s.handleNote)
	}
}

// handleHealth handles the health check endpoint
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "wavegen",
	})
}
