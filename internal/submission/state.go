package submission

import (
	"sort"

	"github.com/atriumhq/atrium/internal/store"
	"github.com/atriumhq/atrium/internal/types"
)

// State is the shared submission slice of application state.
type State struct {
	// Definitions maps definition id to its configuration. Populated
	// asynchronously after an init action is dispatched.
	Definitions map[string]types.SubmissionDefinition

	// Sections holds loaded section layouts keyed by workspace key
	// (collectionID/submissionID).
	Sections map[string][]types.SubmissionSection

	// LastError is the most recent initialization failure, if any.
	LastError string
}

// WorkspaceKey builds the state key for one collection/submission pair.
func WorkspaceKey(collectionID, submissionID string) string {
	return collectionID + "/" + submissionID
}

// Reduce is the reducer for the submission state slice.
func Reduce(s State, a store.Action) State {
	switch act := a.(type) {
	case InitializedAction:
		defs := make(map[string]types.SubmissionDefinition, len(s.Definitions)+len(act.Definitions))
		for id, d := range s.Definitions {
			defs[id] = d
		}
		for _, d := range act.Definitions {
			defs[d.ID] = d
		}
		s.Definitions = defs

	case SectionsLoadedAction:
		sections := make(map[string][]types.SubmissionSection, len(s.Sections)+1)
		for k, v := range s.Sections {
			sections[k] = v
		}
		sections[WorkspaceKey(act.CollectionID, act.SubmissionID)] = act.Sections
		s.Sections = sections

	case InitFailedAction:
		s.LastError = act.Err
	}
	return s
}

// DefaultDefinitionID picks the default definition from the map: the first
// id flagged isDefault in sorted-key order, so the choice is deterministic
// when several definitions claim the default. Returns "" when the map is
// empty or holds no default.
func DefaultDefinitionID(defs map[string]types.SubmissionDefinition) string {
	ids := make([]string, 0, len(defs))
	for id := range defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if defs[id].IsDefault {
			return id
		}
	}
	return ""
}

// Store is the shared state store specialized to the submission slice.
type Store = store.Store[State]

// NewStore creates a submission state store.
func NewStore() *Store {
	return store.New(Reduce, State{})
}
