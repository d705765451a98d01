package submission

import (
	"log/slog"
	"sync"

	"github.com/atriumhq/atrium/internal/store"
)

// Bootstrap coordinates submission form initialization for one workspace.
//
// State machine: uninitialized → (ids become valid) initializing with
// loading=true → (definitions map non-empty) ready with loading=false.
// A later id change re-dispatches initialization without resetting the
// loading flag; there is no transition back to uninitialized.
type Bootstrap struct {
	store  *Store
	logger *slog.Logger

	mu           sync.Mutex
	collectionID string
	submissionID string
	definitionID string
	loading      bool
	initialized  bool
	watchCancel  func()
	closed       bool
}

// NewBootstrap creates a bootstrap coordinator bound to the shared store.
func NewBootstrap(st *Store, logger *slog.Logger) *Bootstrap {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bootstrap{store: st, logger: logger}
}

// SetIDs feeds the coordinator the current collection/submission pair.
// When both are non-empty and either changed, exactly one init action is
// dispatched. The first valid pair also starts the definitions watch and
// raises the loading flag.
func (b *Bootstrap) SetIDs(collectionID, submissionID string) {
	if collectionID == "" || submissionID == "" {
		return
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	if collectionID == b.collectionID && submissionID == b.submissionID {
		b.mu.Unlock()
		return
	}
	b.collectionID = collectionID
	b.submissionID = submissionID

	first := !b.initialized
	if first {
		b.initialized = true
		b.loading = true
	}
	b.mu.Unlock()

	if first {
		b.watchDefinitions()
	}

	b.store.Dispatch(InitAction{CollectionID: collectionID, SubmissionID: submissionID})
}

// watchDefinitions waits for the shared definitions map to become
// non-empty, clears the loading flag, records the default definition id
// when one exists, and stops watching.
func (b *Bootstrap) watchDefinitions() {
	ch, cancel := store.Select(b.store, func(s State) bool {
		return len(s.Definitions) > 0
	})

	b.mu.Lock()
	b.watchCancel = cancel
	b.mu.Unlock()

	go func() {
		for populated := range ch {
			if !populated {
				continue
			}
			id := DefaultDefinitionID(b.store.State().Definitions)

			b.mu.Lock()
			b.definitionID = id
			b.loading = false
			b.mu.Unlock()

			if id == "" {
				b.logger.Debug("submission definitions loaded with no default")
			} else {
				b.logger.Debug("submission definition resolved", "definition", id)
			}
			cancel()
			return
		}
	}()
}

// Status is a snapshot of the bootstrap state machine.
type Status struct {
	CollectionID string `json:"collection_id"`
	SubmissionID string `json:"submission_id"`
	DefinitionID string `json:"definition_id,omitempty"`
	Loading      bool   `json:"loading"`
}

// Status returns the current bootstrap snapshot.
func (b *Bootstrap) Status() Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Status{
		CollectionID: b.collectionID,
		SubmissionID: b.submissionID,
		DefinitionID: b.definitionID,
		Loading:      b.loading,
	}
}

// Close releases the definitions watch. Idempotent.
func (b *Bootstrap) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	cancel := b.watchCancel
	b.watchCancel = nil
	b.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}
