package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	appgames "github.com/preston-bernstein/game-catalog-service/internal/app/games"
	"github.com/preston-bernstein/game-catalog-service/internal/config"
	httpserver "github.com/preston-bernstein/game-catalog-service/internal/http"
	"github.com/preston-bernstein/game-catalog-service/internal/http/handlers"
	"github.com/preston-bernstein/game-catalog-service/internal/http/middleware"
	"github.com/preston-bernstein/game-catalog-service/internal/logging"
	"github.com/preston-bernstein/game-catalog-service/internal/metrics"
	"github.com/preston-bernstein/game-catalog-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	repo          appgames.Repo
	controller    *appgames.Controller
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server backed by the configured store.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	repo, name, err := buildRepo(cfg.Store)
	if err != nil {
		return nil, err
	}
	srv := newServerWithMetrics(cfg, logger, repo, name, nil)
	if cfg.Store.Seed {
		if err := seedRepo(context.Background(), srv.repo, logger); err != nil {
			srv.stopMetrics(context.Background())
			srv.closeRepo()
			return nil, err
		}
	}
	return srv, nil
}

func newServerWithRepo(cfg config.Config, logger *slog.Logger, repo appgames.Repo) *Server {
	return newServerWithMetrics(cfg, logger, repo, config.StoreMemory, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, repo appgames.Repo, storeName string, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if repo == nil {
		repo = store.NewMemoryStore()
	}
	repo = store.NewInstrumentedRepo(repo, logger, recorder, storeName)
	ctrl := appgames.NewController(repo)
	httpSrv := buildHTTPServer(cfg, ctrl, repo, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		repo:          repo,
		controller:    ctrl,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, repo appgames.Repo, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		repo:       repo,
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, ctrl *appgames.Controller, repo appgames.Repo, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	var pinger handlers.Pinger
	if p, ok := repo.(handlers.Pinger); ok {
		pinger = p
	}
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	handler := handlers.NewHandler(ctrl, pinger, logger)
	router := httpserver.NewRouter(handler)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)
	instrumented := otelhttp.NewHandler(wrapped, "http.server")

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      instrumented,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = shutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.stopMetrics(shutdownCtx)

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	s.closeRepo()

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

// stopMetrics flushes and shuts down the telemetry provider.
func (s *Server) stopMetrics(ctx context.Context) {
	if s.metricsStop == nil {
		return
	}
	if err := s.metricsStop(ctx); err != nil && s.logger != nil {
		s.logger.Warn("metrics shutdown failed", "error", err)
	}
}

// closeRepo releases the repository once no requests can reach it.
func (s *Server) closeRepo() {
	c, ok := s.repo.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil && s.logger != nil {
		s.logger.Warn("repository close failed", "error", err)
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
