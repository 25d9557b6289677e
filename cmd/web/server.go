package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/mokfembam/portfolio/internal/catalog"
	"github.com/mokfembam/portfolio/internal/config"
	"github.com/mokfembam/portfolio/internal/handlers"
	"github.com/mokfembam/portfolio/internal/i18n"
	mw "github.com/mokfembam/portfolio/internal/middleware"
	"github.com/mokfembam/portfolio/internal/nav"
	"github.com/mokfembam/portfolio/internal/viewstate"
	"github.com/mokfembam/portfolio/locales"
	"github.com/mokfembam/portfolio/public"
)

const shutdownTimeout = 10 * time.Second

// server wires configuration, content and rendering into an HTTP handler.
type server struct {
	cfg      config.Config
	catalog  *catalog.Catalog
	bundle   *i18n.Bundle
	renderer *renderer
	logger   *zap.Logger
	handler  http.Handler
}

func newServer(cfg config.Config, cat *catalog.Catalog, logger *zap.Logger) (*server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	bundle, err := i18n.Load(locales.FS, cfg.Locale.Default, cfg.Locale.Supported)
	if err != nil {
		return nil, fmt.Errorf("load locales: %w", err)
	}
	devDir := ""
	if cfg.Site.DevMode {
		devDir = cfg.Site.TemplatesDir
	}
	rnd, err := newRenderer(devDir, bundle)
	if err != nil {
		return nil, err
	}
	s := &server{cfg: cfg, catalog: cat, bundle: bundle, renderer: rnd, logger: logger}
	if err := s.verifyAnchors(); err != nil {
		return nil, err
	}
	if s.handler, err = s.routes(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *server) routes() (http.Handler, error) {
	assets, err := public.AssetsFS()
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; deploy behind a proxy that sets it.
	r.Use(chimw.RealIP)
	r.Use(mw.Logger(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(s.cfg.Server.RequestTimeout))
	r.Use(mw.HTMX)

	r.Get("/healthz", s.healthz)
	// assets may be hotlinked from other origins, pages may not
	r.With(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
		MaxAge:         300,
	})).Handle("/assets/*", http.StripPrefix("/assets", mw.AssetsWithCache(assets)))

	r.Group(func(r chi.Router) {
		r.Use(mw.Session(mw.SessionOptions{
			SigningKey: s.cfg.Session.SigningKey,
			Secure:     s.cfg.Session.Secure,
			Logger:     s.logger,
		}))
		r.Use(mw.Locale(s.bundle))

		r.Get(handlers.PathHome, s.home)
		r.Get(handlers.PathProjects, s.projects)
		r.Get(handlers.PathProjectClose, s.projectClose)
		r.Get(handlers.PathProjects+"/{id}", s.projectDetail)
		r.Get(handlers.PathCV, s.cvNotice)
		r.Get(handlers.PathCVDismiss, s.cvDismiss)
		r.Get(handlers.PathScroll+"{section}", s.scroll)
	})
	return r, nil
}

// ServeHTTP exposes the router for tests.
func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.handler.ServeHTTP(w, r) }

// Run listens until ctx is cancelled, then drains in-flight requests.
func (s *server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.handler,
		ReadHeaderTimeout: s.cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       s.cfg.Server.ReadTimeout,
		WriteTimeout:      s.cfg.Server.WriteTimeout,
		IdleTimeout:       s.cfg.Server.IdleTimeout,
	}

	serverLogger := s.logger.Named("http").With(zap.String("addr", srv.Addr))
	errCh := make(chan error, 1)
	go func() {
		serverLogger.Info("portfolio listening",
			zap.Bool("dev_mode", s.cfg.Site.DevMode),
			zap.String("env", s.cfg.Site.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	serverLogger.Info("shutdown signal received; draining requests")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

// verifyAnchors renders the initial page once and checks every navigation
// target exists exactly once.
func (s *server) verifyAnchors() error {
	data := handlers.BuildHomeData(s.catalog, viewstate.NewPage(), s.options(s.bundle.Fallback()))
	body, err := s.renderer.execute("base", data)
	if err != nil {
		return err
	}
	return nav.VerifyAnchors(bytes.NewReader(body))
}

func (s *server) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}
