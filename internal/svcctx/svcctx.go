// Package svcctx provides service context for dependency injection via context.
// This package is separate from server to avoid import cycles with endpoints.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/atriumhq/atrium/internal/config"
	"github.com/atriumhq/atrium/internal/pagination"
	"github.com/atriumhq/atrium/internal/repo"
	"github.com/atriumhq/atrium/internal/session"
	"github.com/atriumhq/atrium/internal/submission"
)

// Services holds all core services that flow through context.
// Components extract what they need via the individual extractors.
type Services struct {
	RepoClient      *repo.Client
	Pager           *pagination.Registry
	Sessions        *session.Manager
	SubmissionStore *submission.Store
	Workspaces      *submission.Workspaces
	ConfigManager   *config.Manager
	Logger          *slog.Logger
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// RepoClientFrom extracts the upstream repository client from context.
func RepoClientFrom(ctx context.Context) *repo.Client {
	if s := ServicesFrom(ctx); s != nil {
		return s.RepoClient
	}
	return nil
}

// PagerFrom extracts the pagination registry from context.
func PagerFrom(ctx context.Context) *pagination.Registry {
	if s := ServicesFrom(ctx); s != nil {
		return s.Pager
	}
	return nil
}

// SessionsFrom extracts the browse session manager from context.
func SessionsFrom(ctx context.Context) *session.Manager {
	if s := ServicesFrom(ctx); s != nil {
		return s.Sessions
	}
	return nil
}

// SubmissionStoreFrom extracts the shared submission store from context.
func SubmissionStoreFrom(ctx context.Context) *submission.Store {
	if s := ServicesFrom(ctx); s != nil {
		return s.SubmissionStore
	}
	return nil
}

// WorkspacesFrom extracts the workspace registry from context.
func WorkspacesFrom(ctx context.Context) *submission.Workspaces {
	if s := ServicesFrom(ctx); s != nil {
		return s.Workspaces
	}
	return nil
}

// ConfigManagerFrom extracts the config manager from context.
func ConfigManagerFrom(ctx context.Context) *config.Manager {
	if s := ServicesFrom(ctx); s != nil {
		return s.ConfigManager
	}
	return nil
}

// LoggerFrom extracts the logger from context.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil {
		return s.Logger
	}
	return nil
}
