package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"gamecatalog/backend/internal/catalog"
	"gamecatalog/backend/internal/config"
	"gamecatalog/backend/internal/database"
	"gamecatalog/backend/internal/handler"
	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

// Server owns the catalog and the HTTP listener serving it.
type Server struct {
	cfg     *config.Config
	log     *zap.Logger
	store   catalog.Store
	db      *gorm.DB
	hub     *hub.Hub
	metrics *metrics.Recorder
	http    *http.Server

	// streams is the base context of every request; cancelling it ends /events streams.
	streams       context.Context
	cancelStreams context.CancelFunc
}

// New builds the store selected by cfg, seeds it when asked to, and wires the router.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	s := &Server{cfg: cfg, log: log, hub: hub.NewHub()}

	switch cfg.StoreDriver {
	case config.StoreSQLite:
		db, err := database.Open(cfg.DatabaseURL, log)
		if err != nil {
			return nil, err
		}
		s.db = db
		s.store = catalog.NewGormStore(db)
	case config.StoreMemory:
		s.store = catalog.NewMemoryStore()
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidStoreDriver, cfg.StoreDriver)
	}

	if cfg.SeedCatalog {
		if err := catalog.Seed(ctx, s.store); err != nil {
			_ = s.Close()
			return nil, err
		}
	}

	if cfg.MetricsEnabled {
		s.metrics = metrics.NewRecorder()
		if games, err := s.store.List(ctx); err == nil {
			s.metrics.SetCatalogSize(len(games))
		}
	}

	router := handler.NewRouter(handler.Deps{
		Store:   s.store,
		Hub:     s.hub,
		Metrics: s.metrics,
		Logger:  log,
		Swagger: cfg.SwaggerEnabled,
	})

	s.streams, s.cancelStreams = context.WithCancel(context.Background())
	// No write timeout: /events streams are long-lived.
	s.http = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
		BaseContext:       func(net.Listener) context.Context { return s.streams },
	}
	s.http.RegisterOnShutdown(s.cancelStreams)

	log.Info("catalog ready",
		zap.String("store", cfg.StoreDriver),
		zap.Bool("seeded", cfg.SeedCatalog),
		zap.Bool("metrics", cfg.MetricsEnabled),
		zap.Bool("swagger", cfg.SwaggerEnabled),
	)
	return s, nil
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until ctx is cancelled, then shuts down within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server starting", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			_ = s.Close()
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		s.log.Info("shutdown signal received")
	}

	return s.shutdown()
}

func (s *Server) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.log.Debug("closing event streams", zap.Int("subscribers", s.hub.Count()))
	var errs []error
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		s.log.Error("graceful shutdown failed", zap.Error(err))
		errs = append(errs, err, s.http.Close())
	}
	errs = append(errs, s.Close())

	s.log.Info("shutdown complete")
	return errors.Join(errs...)
}

// Close releases the store. The in-memory catalog is gone afterwards.
func (s *Server) Close() error {
	if s.cancelStreams != nil {
		s.cancelStreams()
	}
	if s.db == nil {
		return nil
	}
	db := s.db
	s.db = nil
	if err := database.Close(db); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
