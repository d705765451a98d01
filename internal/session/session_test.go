package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atriumhq/atrium/internal/browse"
	"github.com/atriumhq/atrium/internal/pagination"
	"github.com/atriumhq/atrium/internal/repo"
	"github.com/atriumhq/atrium/internal/types"
)

type noopSource struct{}

func (noopSource) Entries(ctx context.Context, q types.BrowseQuery) (repo.EntriesPage, error) {
	return repo.EntriesPage{}, nil
}

func (noopSource) Items(ctx context.Context, value, authority string, q types.BrowseQuery) (repo.ItemsPage, error) {
	return repo.ItemsPage{}, nil
}

func (noopSource) NextEntries(ctx context.Context, p repo.EntriesPage) (repo.EntriesPage, error) {
	return repo.EntriesPage{}, nil
}

func (noopSource) PrevEntries(ctx context.Context, p repo.EntriesPage) (repo.EntriesPage, error) {
	return repo.EntriesPage{}, nil
}

func (noopSource) NextItems(ctx context.Context, p repo.ItemsPage) (repo.ItemsPage, error) {
	return repo.ItemsPage{}, nil
}

func (noopSource) PrevItems(ctx context.Context, p repo.ItemsPage) (repo.ItemsPage, error) {
	return repo.ItemsPage{}, nil
}

func (noopSource) FindByID(ctx context.Context, id string) (types.RepoObject, error) {
	return types.RepoObject{}, nil
}

func newCoordinator(t *testing.T, pager *pagination.Registry, key string) *browse.Coordinator {
	t.Helper()
	c, err := browse.NewCoordinator(browse.Config{
		Source:          noopSource{},
		Pager:           pager,
		Key:             key,
		DefaultBrowseID: "title",
	})
	if err != nil {
		t.Fatalf("failed to create coordinator: %v", err)
	}
	return c
}

func TestManagerOpenGetClose(t *testing.T) {
	pager := pagination.NewRegistry()
	m := NewManager(time.Hour, 0, nil)
	defer m.Shutdown()

	s, err := m.Open(newCoordinator(t, pager, "browse.one"))
	if err != nil {
		t.Fatalf("failed to open session: %v", err)
	}
	if s.ID == "" {
		t.Fatal("expected a session id")
	}

	got, err := m.Get(s.ID)
	if err != nil {
		t.Fatalf("failed to get session: %v", err)
	}
	if got != s {
		t.Error("expected the same session back")
	}

	if err := m.Close(s.ID); err != nil {
		t.Fatalf("failed to close session: %v", err)
	}
	if _, err := m.Get(s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after close, got %v", err)
	}

	// Closing a session releases its pagination key.
	if pager.Has("browse.one") {
		t.Error("expected pagination key cleared with the session")
	}
}

func TestManagerLimit(t *testing.T) {
	pager := pagination.NewRegistry()
	m := NewManager(time.Hour, 1, nil)
	defer m.Shutdown()

	if _, err := m.Open(newCoordinator(t, pager, "browse.a")); err != nil {
		t.Fatalf("failed to open first session: %v", err)
	}
	if _, err := m.Open(newCoordinator(t, pager, "browse.b")); !errors.Is(err, ErrLimitReached) {
		t.Errorf("expected ErrLimitReached, got %v", err)
	}
}

func TestManagerShutdownClosesAll(t *testing.T) {
	pager := pagination.NewRegistry()
	m := NewManager(time.Hour, 0, nil)

	s, err := m.Open(newCoordinator(t, pager, "browse.shutdown"))
	if err != nil {
		t.Fatalf("failed to open session: %v", err)
	}

	m.Shutdown()

	if _, err := m.Get(s.ID); !errors.Is(err, ErrNotFound) {
		t.Error("expected sessions gone after shutdown")
	}
	if pager.Has("browse.shutdown") {
		t.Error("expected pagination key cleared on shutdown")
	}
	if _, err := m.Open(newCoordinator(t, pager, "browse.late")); err == nil {
		t.Error("expected open to fail after shutdown")
	}

	// Shutdown is idempotent.
	m.Shutdown()
}

func TestManagerReapsIdleSessions(t *testing.T) {
	pager := pagination.NewRegistry()
	m := NewManager(40*time.Millisecond, 0, nil)
	defer m.Shutdown()

	if _, err := m.Open(newCoordinator(t, pager, "browse.idle")); err != nil {
		t.Fatalf("failed to open session: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if m.Len() == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("expected the idle session to be reaped")
}
