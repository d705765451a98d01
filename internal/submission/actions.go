// Package submission drives submission form bootstrap: dispatching
// initialization when a collection/submission id pair becomes available,
// loading the default section layout through an effect handler, and
// resolving the default definition from shared state.
package submission

import "github.com/atriumhq/atrium/internal/types"

// Action type identifiers.
const (
	TypeInit           = "submission/init"
	TypeInitialized    = "submission/initialized"
	TypeSectionsLoaded = "submission/sections_loaded"
	TypeInitFailed     = "submission/init_failed"
)

// InitAction starts submission form initialization for an id pair.
type InitAction struct {
	CollectionID string
	SubmissionID string
}

func (InitAction) Type() string { return TypeInit }

// InitializedAction carries the definitions fetched for an init.
type InitializedAction struct {
	CollectionID string
	SubmissionID string
	Definitions  []types.SubmissionDefinition
}

func (InitializedAction) Type() string { return TypeInitialized }

// SectionsLoadedAction signals completion: the default section layout for
// one collection/submission/definition triple is available.
type SectionsLoadedAction struct {
	CollectionID string
	SubmissionID string
	DefinitionID string
	Sections     []types.SubmissionSection
}

func (SectionsLoadedAction) Type() string { return TypeSectionsLoaded }

// InitFailedAction records an initialization failure. The loading flag is
// not cleared; failure surfaces through the recorded error only.
type InitFailedAction struct {
	CollectionID string
	SubmissionID string
	Err          string
}

func (InitFailedAction) Type() string { return TypeInitFailed }
