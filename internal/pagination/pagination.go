// Package pagination holds current pagination and sort state keyed by a
// string identifier. State for a key is shared process-wide: any component
// acquiring the same key sees the same window and ordering. Callers receive
// an explicit Handle that owns the key and must release it on teardown so
// state does not leak into the next use of the same key.
package pagination

import (
	"errors"
	"sync"

	"github.com/atriumhq/atrium/internal/types"
)

// ErrReleased is returned when a handle is used after Release.
var ErrReleased = errors.New("pagination handle released")

// Defaults are the initial pagination and sort for a freshly acquired key.
type Defaults struct {
	Pagination types.Pagination
	Sort       types.Sort
}

type entry struct {
	pagination types.Pagination
	sort       types.Sort
}

// Registry stores pagination/sort state by key.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Acquire returns a handle for the given key, creating state from defaults
// if the key is not present. Acquiring an existing key shares its state.
func (r *Registry) Acquire(key string, defaults Defaults) *Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[key]; !ok {
		r.entries[key] = &entry{
			pagination: defaults.Pagination,
			sort:       defaults.Sort,
		}
	}
	return &Handle{registry: r, key: key}
}

// Clear removes state for a key. Clearing an absent key is a no-op.
func (r *Registry) Clear(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
}

// Has reports whether state exists for a key.
func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]
	return ok
}

// Handle is scoped access to one key's pagination/sort state.
type Handle struct {
	registry *Registry
	key      string

	mu       sync.Mutex
	released bool
}

// Key returns the state key this handle owns.
func (h *Handle) Key() string { return h.key }

// Pagination returns the current pagination for the key.
func (h *Handle) Pagination() (types.Pagination, error) {
	if err := h.check(); err != nil {
		return types.Pagination{}, err
	}
	h.registry.mu.RLock()
	defer h.registry.mu.RUnlock()
	e, ok := h.registry.entries[h.key]
	if !ok {
		return types.Pagination{}, ErrReleased
	}
	return e.pagination, nil
}

// Sort returns the current sort for the key.
func (h *Handle) Sort() (types.Sort, error) {
	if err := h.check(); err != nil {
		return types.Sort{}, err
	}
	h.registry.mu.RLock()
	defer h.registry.mu.RUnlock()
	e, ok := h.registry.entries[h.key]
	if !ok {
		return types.Sort{}, ErrReleased
	}
	return e.sort, nil
}

// SetPagination updates the pagination window for the key.
func (h *Handle) SetPagination(p types.Pagination) error {
	if err := h.check(); err != nil {
		return err
	}
	h.registry.mu.Lock()
	defer h.registry.mu.Unlock()
	e, ok := h.registry.entries[h.key]
	if !ok {
		return ErrReleased
	}
	e.pagination = p
	return nil
}

// SetSort updates the ordering for the key.
func (h *Handle) SetSort(s types.Sort) error {
	if err := h.check(); err != nil {
		return err
	}
	h.registry.mu.Lock()
	defer h.registry.mu.Unlock()
	e, ok := h.registry.entries[h.key]
	if !ok {
		return ErrReleased
	}
	e.sort = s
	return nil
}

// Release clears the key's state. Release is idempotent; any use of the
// handle afterwards returns ErrReleased.
func (h *Handle) Release() {
	h.mu.Lock()
	if h.released {
		h.mu.Unlock()
		return
	}
	h.released = true
	h.mu.Unlock()

	h.registry.Clear(h.key)
}

func (h *Handle) check() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return ErrReleased
	}
	return nil
}
