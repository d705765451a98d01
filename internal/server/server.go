// Package server is the Atrium HTTP gateway. It owns the long-lived
// services (upstream client, browse sessions, submission state) and serves
// the endpoint registry over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/atriumhq/atrium/internal/api"
	"github.com/atriumhq/atrium/internal/config"
	"github.com/atriumhq/atrium/internal/pagination"
	"github.com/atriumhq/atrium/internal/repo"
	"github.com/atriumhq/atrium/internal/server/endpoints"
	"github.com/atriumhq/atrium/internal/session"
	"github.com/atriumhq/atrium/internal/submission"
	"github.com/atriumhq/atrium/internal/svcctx"
)

// Server is the main Atrium HTTP server. It fronts an upstream repository
// REST API and manages browse sessions and submission workspaces.
type Server struct {
	httpServer *http.Server
	repoClient *repo.Client
	pager      *pagination.Registry
	sessions   *session.Manager
	store      *submission.Store
	effects    *submission.Effects
	workspaces *submission.Workspaces
	configMgr  *config.Manager
	logger     *slog.Logger

	// services holds all core services for context enrichment
	services *svcctx.Services

	// endpoints registry for HTTP routes
	endpointRegistry *api.Registry

	mu      sync.RWMutex
	running bool
}

// Config holds server configuration.
type Config struct {
	// Host is the address to bind to (default: 127.0.0.1)
	Host string
	// Port is the port to listen on (default: 9280)
	Port string
	// ConfigManager provides configuration with hot-reload support (required)
	ConfigManager *config.Manager
	// SwaggerSpecPath is the path to the generated swagger.json
	SwaggerSpecPath string
	// Logger is the structured logger to use
	Logger *slog.Logger
}

// New creates a new Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.ConfigManager == nil {
		return nil, errors.New("config manager is required")
	}
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == "" {
		cfg.Port = "9280"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	appCfg := cfg.ConfigManager.Get()

	s := &Server{
		repoClient: repo.NewClient(appCfg.Upstream.URL, cfg.Logger,
			repo.WithToken(appCfg.UpstreamToken()),
			repo.WithTimeout(appCfg.UpstreamTimeout())),
		pager:     pagination.NewRegistry(),
		configMgr: cfg.ConfigManager,
		logger:    cfg.Logger,
	}

	// Browse defaults and session TTL pick up config changes on the next
	// session; the upstream URL requires a restart.
	cfg.ConfigManager.OnChange(func(c *config.Config) {
		if c.Upstream.URL != s.repoClient.BaseURL() {
			cfg.Logger.Warn("upstream URL changed in config, restart to apply",
				"current", s.repoClient.BaseURL(), "new", c.Upstream.URL)
			return
		}
		cfg.Logger.Info("configuration reloaded")
	})

	// Create endpoint registry and register all endpoints
	s.endpointRegistry = api.NewRegistry()
	for _, ep := range endpoints.All(endpoints.Config{SwaggerSpecPath: cfg.SwaggerSpecPath}) {
		s.endpointRegistry.Register(ep)
	}

	// Set up HTTP server
	mux := http.NewServeMux()
	s.endpointRegistry.RegisterRoutes(mux, s.requireInit)

	s.httpServer = &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      s.withServices(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// Start starts the server. It blocks until the context is cancelled or an
// error occurs.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}
	s.running = true
	s.mu.Unlock()

	appCfg := s.configMgr.Get()

	// Verify the upstream repository is reachable. Not fatal: the gateway
	// reports degraded readiness until the upstream comes up.
	if err := s.repoClient.HealthCheck(ctx); err != nil {
		s.logger.Warn("upstream repository not reachable", "url", s.repoClient.BaseURL(), "error", err)
	} else {
		s.logger.Info("upstream repository is ready", "url", s.repoClient.BaseURL())
	}

	// Create session and submission services
	s.sessions = session.NewManager(appCfg.SessionTTL(), appCfg.Sessions.MaxSessions, s.logger)
	s.store = submission.NewStore()
	s.effects = submission.NewEffects(ctx, s.store, s.repoClient, s.logger)
	s.workspaces = submission.NewWorkspaces(s.store, s.logger)

	// Create services struct for context enrichment
	s.services = &svcctx.Services{
		RepoClient:      s.repoClient,
		Pager:           s.pager,
		Sessions:        s.sessions,
		SubmissionStore: s.store,
		Workspaces:      s.workspaces,
		ConfigManager:   s.configMgr,
		Logger:          s.logger,
	}

	// Start HTTP server in goroutine
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			_ = s.shutdown()
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	return s.shutdown()
}

// shutdown performs graceful shutdown of the HTTP server and all services.
func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	if s.sessions != nil {
		s.sessions.Shutdown()
	}
	if s.workspaces != nil {
		s.workspaces.Shutdown()
	}
	if s.effects != nil {
		s.effects.Stop()
	}
	if s.store != nil {
		s.store.Close()
	}

	s.setNotRunning()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) setNotRunning() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning returns whether the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// RepoClient returns the upstream repository client.
func (s *Server) RepoClient() *repo.Client {
	return s.repoClient
}

// Sessions returns the browse session manager.
// Returns nil if the server hasn't started yet.
func (s *Server) Sessions() *session.Manager {
	return s.sessions
}

// Addr returns the server's listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// withServices wraps a handler to enrich the request context with services.
func (s *Server) withServices(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if s.services != nil {
			ctx = svcctx.WithServices(ctx, s.services)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireInit is middleware that ensures the server is fully initialized.
// Returns 503 Service Unavailable until sessions and stores exist.
func (s *Server) requireInit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.sessions == nil || s.store == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"server not fully initialized"}`))
			return
		}
		next(w, r)
	}
}
