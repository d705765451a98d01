package submission

import (
	"context"
	"log/slog"
	"sync"

	"github.com/atriumhq/atrium/internal/store"
	"github.com/atriumhq/atrium/internal/types"
)

// ConfigSource loads submission configuration from the upstream repository.
// It is satisfied by *repo.Client.
type ConfigSource interface {
	Definitions(ctx context.Context) ([]types.SubmissionDefinition, error)
	Sections(ctx context.Context, collectionID, submissionID, definitionID string) ([]types.SubmissionSection, error)
}

// Effects is the side-effect handler for submission actions. On init it
// fetches and validates the definitions; once initialized it loads the
// default section layout for the triple and signals completion.
type Effects struct {
	store  *Store
	source ConfigSource
	logger *slog.Logger

	cancel  func()
	done    chan struct{}
	stopped sync.Once
}

// NewEffects wires the effect handler to a store and starts observing
// dispatched actions. Call Stop to release the subscription.
func NewEffects(ctx context.Context, st *Store, source ConfigSource, logger *slog.Logger) *Effects {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Effects{
		store:  st,
		source: source,
		logger: logger,
		done:   make(chan struct{}),
	}

	actions, cancel := st.Actions()
	e.cancel = cancel

	go func() {
		defer close(e.done)
		for a := range actions {
			e.handle(ctx, a)
		}
	}()

	return e
}

func (e *Effects) handle(ctx context.Context, a store.Action) {
	switch act := a.(type) {
	case InitAction:
		e.initialize(ctx, act)
	case InitializedAction:
		e.loadDefaultSections(ctx, act)
	}
}

// initialize fetches the definition catalogue for an init action. Invalid
// definitions are dropped rather than failing the whole bootstrap.
func (e *Effects) initialize(ctx context.Context, act InitAction) {
	defs, err := e.source.Definitions(ctx)
	if err != nil {
		e.logger.Error("failed to load submission definitions",
			"collection", act.CollectionID, "submission", act.SubmissionID, "error", err)
		e.store.Dispatch(InitFailedAction{
			CollectionID: act.CollectionID,
			SubmissionID: act.SubmissionID,
			Err:          err.Error(),
		})
		return
	}

	valid := make([]types.SubmissionDefinition, 0, len(defs))
	for _, d := range defs {
		if err := ValidateDefinition(d); err != nil {
			e.logger.Warn("dropping invalid submission definition", "definition", d.ID, "error", err)
			continue
		}
		valid = append(valid, d)
	}

	e.store.Dispatch(InitializedAction{
		CollectionID: act.CollectionID,
		SubmissionID: act.SubmissionID,
		Definitions:  valid,
	})
}

// loadDefaultSections loads the section layout for the default definition
// of a freshly initialized workspace, then signals completion.
func (e *Effects) loadDefaultSections(ctx context.Context, act InitializedAction) {
	definitionID := DefaultDefinitionID(e.store.State().Definitions)
	if definitionID == "" {
		e.logger.Warn("no default submission definition available",
			"collection", act.CollectionID, "submission", act.SubmissionID)
		return
	}

	sections, err := e.source.Sections(ctx, act.CollectionID, act.SubmissionID, definitionID)
	if err != nil {
		e.logger.Error("failed to load default sections",
			"definition", definitionID, "error", err)
		e.store.Dispatch(InitFailedAction{
			CollectionID: act.CollectionID,
			SubmissionID: act.SubmissionID,
			Err:          err.Error(),
		})
		return
	}

	e.store.Dispatch(SectionsLoadedAction{
		CollectionID: act.CollectionID,
		SubmissionID: act.SubmissionID,
		DefinitionID: definitionID,
		Sections:     sections,
	})
}

// Stop releases the action subscription and waits for the handler loop.
func (e *Effects) Stop() {
	e.stopped.Do(func() {
		e.cancel()
		<-e.done
	})
}
