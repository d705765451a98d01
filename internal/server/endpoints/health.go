package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/atriumhq/atrium/internal/api"
	"github.com/atriumhq/atrium/internal/svcctx"
	"github.com/atriumhq/atrium/version"
)

// HealthResponse is the response for health check endpoints.
type HealthResponse struct {
	Status   string `json:"status"`
	Upstream string `json:"upstream,omitempty"`
}

// HealthEndpoint handles GET /health.
type HealthEndpoint struct{}

func (e *HealthEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/health", e.handler
}

func (e *HealthEndpoint) RequiresInit() bool { return false }

func (e *HealthEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (e *HealthEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := api.NewClient(getServerURL())
			var resp HealthResponse
			if err := client.Get(ctx, "/health", &resp); err != nil {
				return err
			}
			fmt.Printf("Status: %s\n", resp.Status)
			return nil
		},
	}
}

// ReadyEndpoint handles GET /ready.
type ReadyEndpoint struct{}

func (e *ReadyEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/ready", e.handler
}

func (e *ReadyEndpoint) RequiresInit() bool { return false }

func (e *ReadyEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", Upstream: "ok"}

	client := svcctx.RepoClientFrom(r.Context())
	if client != nil {
		if err := client.HealthCheck(r.Context()); err != nil {
			resp.Status = "degraded"
			resp.Upstream = "unhealthy"
			writeJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
	} else {
		resp.Status = "degraded"
		resp.Upstream = "not_initialized"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (e *ReadyEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "ready",
		Short: "Check server readiness (includes upstream repository)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := api.NewClient(getServerURL())
			var resp HealthResponse
			if err := client.Get(ctx, "/ready", &resp); err != nil {
				return err
			}
			fmt.Printf("Status:   %s\n", resp.Status)
			if resp.Upstream != "" {
				fmt.Printf("Upstream: %s\n", resp.Upstream)
			}
			return nil
		},
	}
}

// StatusResponse is the detailed status response.
type StatusResponse struct {
	Server   string         `json:"server"`
	Version  string         `json:"version"`
	Upstream UpstreamStatus `json:"upstream"`
	Sessions int            `json:"sessions"`
}

// UpstreamStatus shows upstream repository reachability.
type UpstreamStatus struct {
	URL    string `json:"url"`
	Health string `json:"health"`
}

// StatusEndpoint handles GET /status.
type StatusEndpoint struct{}

func (e *StatusEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/status", e.handler
}

func (e *StatusEndpoint) RequiresInit() bool { return false }

func (e *StatusEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{
		Server:  "running",
		Version: version.GitRelease,
	}

	if sessions := svcctx.SessionsFrom(r.Context()); sessions != nil {
		resp.Sessions = sessions.Len()
	}

	client := svcctx.RepoClientFrom(r.Context())
	if client != nil {
		resp.Upstream.URL = client.BaseURL()
		if err := client.HealthCheck(r.Context()); err != nil {
			resp.Upstream.Health = "unhealthy"
		} else {
			resp.Upstream.Health = "healthy"
		}
	} else {
		resp.Upstream.Health = "not_initialized"
	}

	writeJSON(w, http.StatusOK, resp)
}

func (e *StatusEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get detailed server status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := api.NewClient(getServerURL())
			var resp StatusResponse
			if err := client.Get(ctx, "/status", &resp); err != nil {
				return err
			}
			fmt.Printf("Server:  %s\n", resp.Server)
			fmt.Printf("Version: %s\n", resp.Version)
			fmt.Printf("Upstream:\n")
			fmt.Printf("  URL:    %s\n", resp.Upstream.URL)
			fmt.Printf("  Health: %s\n", resp.Upstream.Health)
			fmt.Printf("Sessions: %d\n", resp.Sessions)
			return nil
		},
	}
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ErrorResponse is a standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
