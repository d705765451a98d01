package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atriumhq/atrium/internal/types"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Upstream.URL == "" {
		t.Error("expected a default upstream URL")
	}
	if cfg.Upstream.Token != "${ATRIUM_UPSTREAM_TOKEN}" {
		t.Error("expected upstream token placeholder")
	}
	if cfg.Browse.DefaultBrowseID != "title" {
		t.Errorf("expected title as default browse id, got %s", cfg.Browse.DefaultBrowseID)
	}
	if cfg.Browse.PageSize <= 0 {
		t.Error("expected a positive default page size")
	}
}

func TestResolveEnvVars(t *testing.T) {
	t.Run("resolves environment variable", func(t *testing.T) {
		os.Setenv("TEST_UPSTREAM_TOKEN", "secret123")
		defer os.Unsetenv("TEST_UPSTREAM_TOKEN")

		result := ResolveEnvVars("${TEST_UPSTREAM_TOKEN}")
		if result != "secret123" {
			t.Errorf("expected secret123, got %s", result)
		}
	})

	t.Run("returns empty for missing env var", func(t *testing.T) {
		result := ResolveEnvVars("${DEFINITELY_NOT_SET_12345}")
		if result != "" {
			t.Errorf("expected empty string, got %s", result)
		}
	})

	t.Run("leaves literal values unchanged", func(t *testing.T) {
		result := ResolveEnvVars("literal-value")
		if result != "literal-value" {
			t.Errorf("expected literal-value, got %s", result)
		}
	})
}

func TestBrowseDefaults(t *testing.T) {
	cfg := &Config{
		Browse: BrowseCfg{
			DefaultBrowseID: "author",
			PageSize:        40,
			SortField:       "default",
			SortDirection:   "desc",
		},
	}

	pag, sort := cfg.BrowseDefaults()
	if pag.Page != 0 || pag.PageSize != 40 {
		t.Errorf("unexpected pagination defaults: %+v", pag)
	}
	if sort.Direction != types.SortDescending {
		t.Errorf("expected DESC, got %s", sort.Direction)
	}

	t.Run("falls back on zero page size", func(t *testing.T) {
		pag, _ := (&Config{}).BrowseDefaults()
		if pag.PageSize != 20 {
			t.Errorf("expected fallback page size 20, got %d", pag.PageSize)
		}
	})
}

func TestDurations(t *testing.T) {
	cfg := &Config{
		Upstream: UpstreamCfg{TimeoutSeconds: 5},
		Sessions: SessionsCfg{TTLMinutes: 10},
	}
	if cfg.UpstreamTimeout() != 5*time.Second {
		t.Errorf("unexpected upstream timeout: %s", cfg.UpstreamTimeout())
	}
	if cfg.SessionTTL() != 10*time.Minute {
		t.Errorf("unexpected session TTL: %s", cfg.SessionTTL())
	}

	zero := &Config{}
	if zero.UpstreamTimeout() != 30*time.Second {
		t.Error("expected upstream timeout fallback")
	}
	if zero.SessionTTL() != 30*time.Minute {
		t.Error("expected session TTL fallback")
	}
}

func TestNewManager(t *testing.T) {
	t.Run("loads from config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		configContent := `
upstream:
  url: "http://repo.example.org/server"
browse:
  default_browse_id: "dateissued"
`
		if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		mgr, err := NewManager(configFile)
		if err != nil {
			t.Fatalf("failed to create manager: %v", err)
		}

		cfg := mgr.Get()
		if cfg.Upstream.URL != "http://repo.example.org/server" {
			t.Errorf("unexpected upstream URL: %s", cfg.Upstream.URL)
		}
		if cfg.Browse.DefaultBrowseID != "dateissued" {
			t.Errorf("unexpected default browse id: %s", cfg.Browse.DefaultBrowseID)
		}
	})
}

func TestWriteDefault(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("failed to write default config: %v", err)
	}

	mgr, err := NewManager(path)
	if err != nil {
		t.Fatalf("failed to load written config: %v", err)
	}

	cfg := mgr.Get()
	if cfg.Browse.DefaultBrowseID != "title" {
		t.Errorf("round-trip lost defaults: %+v", cfg.Browse)
	}
}
