package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "audio-relay/docs" // Generated swagger docs
	"audio-relay/internal/api/middleware"
	v1routes "audio-relay/internal/api/v1/routes"
	"audio-relay/internal/api/v1/services"
	"audio-relay/internal/app/api/provider"
	"audio-relay/internal/config"
	"audio-relay/internal/metrics"
	"audio-relay/web"
	"audio-relay/web/handlers"
)

// MaxBodyBytes caps JSON request bodies. Base64 inflates audio by a third,
// so this admits roughly 37MB of raw audio.
const MaxBodyBytes = 50 << 20

// Server represents the relay HTTP server
type Server struct {
	config     *config.Config
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer creates a new relay server. m may be nil to disable /metrics.
func NewServer(
	cfg *config.Config,
	registry *provider.Registry,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Server {
	// Set Gin mode based on environment
	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RequestID(logger))
	router.Use(middleware.StructuredLogging(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if m != nil {
		router.Use(middleware.Metrics(m))
	}
	router.Use(middleware.BodyLimit(MaxBodyBytes))

	// Relay API routes
	serviceContainer := &v1routes.ServiceContainer{
		TranscriptionService: services.NewTranscriptionService(registry, logger),
	}
	v1routes.RegisterRoutes(router, serviceContainer)

	// Documentation and demo pages
	static := handlers.NewStaticHandler(web.Public())
	pages := map[string]string{
		"/":           "doc.html",
		"/demo":       "demo.html",
		"/azuredemo":  "azuredemo.html",
		"/geminidemo": "geminidemo.html",
		"/openaidemo": "openaidemo.html",
	}
	for path, file := range pages {
		router.GET(path, static.Page(file))
		router.HEAD(path, static.Page(file))
	}
	router.NoRoute(static.ServeStatic)

	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// Swagger documentation routes
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Server{
		config:     cfg,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
	}
}

// Start runs the server and blocks until it stops. It returns nil after a
// graceful Shutdown.
func (s *Server) Start() error {
	s.logger.Info("Starting relay server",
		zap.String("address", s.httpServer.Addr),
		zap.String("environment", s.config.Server.Environment),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down relay server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("Relay server shutdown complete")
	return nil
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
