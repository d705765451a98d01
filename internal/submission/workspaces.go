package submission

import (
	"errors"
	"log/slog"
	"sync"
)

// ErrWorkspaceNotFound is returned when no bootstrap exists for a key.
var ErrWorkspaceNotFound = errors.New("workspace not found")

// Workspaces tracks one bootstrap coordinator per collection/submission
// pair, all sharing a single store.
type Workspaces struct {
	store  *Store
	logger *slog.Logger

	mu         sync.Mutex
	bootstraps map[string]*Bootstrap
	closed     bool
}

// NewWorkspaces creates a workspace registry over the shared store.
func NewWorkspaces(st *Store, logger *slog.Logger) *Workspaces {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workspaces{
		store:      st,
		logger:     logger,
		bootstraps: make(map[string]*Bootstrap),
	}
}

// Init starts (or returns the already running) bootstrap for an id pair.
func (w *Workspaces) Init(collectionID, submissionID string) (*Bootstrap, error) {
	if collectionID == "" || submissionID == "" {
		return nil, errors.New("collection and submission ids are required")
	}
	key := WorkspaceKey(collectionID, submissionID)

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil, errors.New("workspace registry is shut down")
	}
	b, ok := w.bootstraps[key]
	if !ok {
		b = NewBootstrap(w.store, w.logger)
		w.bootstraps[key] = b
	}
	w.mu.Unlock()

	b.SetIDs(collectionID, submissionID)
	return b, nil
}

// Get returns the bootstrap for an id pair.
func (w *Workspaces) Get(collectionID, submissionID string) (*Bootstrap, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	b, ok := w.bootstraps[WorkspaceKey(collectionID, submissionID)]
	if !ok {
		return nil, ErrWorkspaceNotFound
	}
	return b, nil
}

// Shutdown closes every bootstrap.
func (w *Workspaces) Shutdown() {
	w.mu.Lock()
	bootstraps := w.bootstraps
	w.bootstraps = make(map[string]*Bootstrap)
	w.closed = true
	w.mu.Unlock()

	for _, b := range bootstraps {
		b.Close()
	}
}
