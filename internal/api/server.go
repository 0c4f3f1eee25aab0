// Package api provides the HTTP API for eqrng.
// It serves random zone selection, zone annotations, ratings and links to
// the public, plus paged admin listings and operational endpoints, via a
// Gin-based HTTP server.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/eqrng/internal/api/handlers"
	"github.com/jroosing/eqrng/internal/api/middleware"
	"github.com/jroosing/eqrng/internal/config"
	"github.com/jroosing/eqrng/internal/database"
	"github.com/jroosing/eqrng/internal/metrics"
	"github.com/klauspost/compress/gzhttp"
)

// Server is the eqrng HTTP server.
//
// Security note: admin endpoints are open when admin.allow_unauthenticated
// is set without an admin.api_key.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	engine     *gin.Engine
	handler    *handlers.Handler
	metrics    *metrics.Metrics
	httpServer *http.Server
}

func New(cfg *config.Config, db *database.DB, logger *slog.Logger) *Server {
	if cfg == nil {
		panic("api.New: cfg is nil")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	if origins := cfg.CORS.Origins(); len(origins) > 0 {
		engine.Use(middleware.CORS(origins))
	}
	engine.Use(middleware.SlogRequestLogger(logger))
	engine.Use(middleware.SecurityHeaders())

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		engine.Use(middleware.Metrics(m))
	}

	h := handlers.New(cfg, db, logger)
	h.SetMetrics(m)
	RegisterRoutes(engine, h, cfg, m)

	if cfg.Frontend.Dir != "" {
		MountFrontend(engine, cfg.Frontend.Dir, logger)
	}

	var root http.Handler = engine
	if cfg.Server.Compression {
		root = gzhttp.GzipHandler(engine)
	}

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           root,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{cfg: cfg, logger: logger, engine: engine, handler: h, metrics: m, httpServer: httpServer}
}

func (s *Server) Addr() string {
	if s.httpServer == nil {
		return ""
	}
	return s.httpServer.Addr
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// HTTPHandler returns the root handler including response compression.
func (s *Server) HTTPHandler() http.Handler {
	return s.httpServer.Handler
}

// Handler exposes the endpoint handlers for startup wiring (version,
// roster, initial snapshot load).
func (s *Server) Handler() *handlers.Handler {
	return s.handler
}

// Metrics returns the server's instrumentation, or nil when disabled.
func (s *Server) Metrics() *metrics.Metrics {
	return s.metrics
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Serve accepts connections on l.
func (s *Server) Serve(l net.Listener) error {
	return s.httpServer.Serve(l)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
