package config

import (
	"time"

	"github.com/atriumhq/atrium/internal/types"
)

// Config holds atrium configuration.
// Stored at: ~/.atrium/config.yaml
type Config struct {
	Upstream UpstreamCfg `mapstructure:"upstream" yaml:"upstream"`
	Browse   BrowseCfg   `mapstructure:"browse" yaml:"browse"`
	Server   ServerCfg   `mapstructure:"server" yaml:"server"`
	Sessions SessionsCfg `mapstructure:"sessions" yaml:"sessions"`
}

// UpstreamCfg configures the repository REST API the gateway fronts.
type UpstreamCfg struct {
	URL string `mapstructure:"url" yaml:"url"`
	// Token is a bearer token for the upstream API (supports ${ENV_VAR} syntax).
	Token          string `mapstructure:"token" yaml:"token"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// BrowseCfg holds default browse parameters applied when a request omits them.
type BrowseCfg struct {
	DefaultBrowseID string `mapstructure:"default_browse_id" yaml:"default_browse_id"`
	PageSize        int    `mapstructure:"page_size" yaml:"page_size"`
	SortField       string `mapstructure:"sort_field" yaml:"sort_field"`
	SortDirection   string `mapstructure:"sort_direction" yaml:"sort_direction"`
}

// ServerCfg configures the HTTP listener.
type ServerCfg struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port string `mapstructure:"port" yaml:"port"`
}

// SessionsCfg configures browse session lifecycle.
type SessionsCfg struct {
	// TTLMinutes is how long an idle browse session survives before the
	// reaper closes it.
	TTLMinutes int `mapstructure:"ttl_minutes" yaml:"ttl_minutes"`
	// MaxSessions caps concurrently open browse sessions.
	MaxSessions int `mapstructure:"max_sessions" yaml:"max_sessions"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Upstream: UpstreamCfg{
			URL:            "http://localhost:8080",
			Token:          "${ATRIUM_UPSTREAM_TOKEN}",
			TimeoutSeconds: 30,
		},
		Browse: BrowseCfg{
			DefaultBrowseID: "title",
			PageSize:        20,
			SortField:       "default",
			SortDirection:   string(types.SortAscending),
		},
		Server: ServerCfg{
			Host: "localhost",
			Port: "9280",
		},
		Sessions: SessionsCfg{
			TTLMinutes:  30,
			MaxSessions: 256,
		},
	}
}

// UpstreamTimeout returns the upstream HTTP timeout as a duration.
func (c *Config) UpstreamTimeout() time.Duration {
	if c.Upstream.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Upstream.TimeoutSeconds) * time.Second
}

// SessionTTL returns the idle session lifetime as a duration.
func (c *Config) SessionTTL() time.Duration {
	if c.Sessions.TTLMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.Sessions.TTLMinutes) * time.Minute
}

// BrowseDefaults converts the browse section into typed defaults.
func (c *Config) BrowseDefaults() (types.Pagination, types.Sort) {
	size := c.Browse.PageSize
	if size <= 0 {
		size = 20
	}
	return types.Pagination{Page: 0, PageSize: size},
		types.Sort{
			Field:     c.Browse.SortField,
			Direction: types.ParseSortDirection(c.Browse.SortDirection),
		}
}
