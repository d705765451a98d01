package submission

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/atriumhq/atrium/internal/types"
)

type fakeConfigSource struct {
	mu sync.Mutex

	definitions []types.SubmissionDefinition
	defsErr     error
	sections    []types.SubmissionSection
	sectionsErr error

	definitionCalls int
	sectionCalls    int
	lastDefinition  string
}

func (f *fakeConfigSource) Definitions(ctx context.Context) ([]types.SubmissionDefinition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.definitionCalls++
	return f.definitions, f.defsErr
}

func (f *fakeConfigSource) Sections(ctx context.Context, collectionID, submissionID, definitionID string) ([]types.SubmissionSection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sectionCalls++
	f.lastDefinition = definitionID
	return f.sections, f.sectionsErr
}

// waitFor polls until cond returns true or the deadline expires.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", msg)
}

func TestEffectsInitLoadsDefaultSections(t *testing.T) {
	source := &fakeConfigSource{
		definitions: []types.SubmissionDefinition{
			{ID: "traditional", Name: "Traditional", IsDefault: true},
			{ID: "thesis", Name: "Thesis"},
		},
		sections: []types.SubmissionSection{{ID: "describe", Type: "submission-form"}},
	}

	st := NewStore()
	defer st.Close()
	effects := NewEffects(context.Background(), st, source, nil)
	defer effects.Stop()

	st.Dispatch(InitAction{CollectionID: "c1", SubmissionID: "s1"})

	waitFor(t, func() bool {
		_, ok := st.State().Sections[WorkspaceKey("c1", "s1")]
		return ok
	}, "sections to load")

	state := st.State()
	if len(state.Definitions) != 2 {
		t.Errorf("expected 2 definitions, got %d", len(state.Definitions))
	}

	source.mu.Lock()
	defer source.mu.Unlock()
	if source.lastDefinition != "traditional" {
		t.Errorf("expected sections loaded for the default definition, got %q", source.lastDefinition)
	}
}

func TestEffectsDropsInvalidDefinitions(t *testing.T) {
	source := &fakeConfigSource{
		definitions: []types.SubmissionDefinition{
			{ID: "good", Name: "Good", IsDefault: true},
			{ID: "", Name: "No ID"},
		},
		sections: []types.SubmissionSection{{ID: "describe", Type: "submission-form"}},
	}

	st := NewStore()
	defer st.Close()
	effects := NewEffects(context.Background(), st, source, nil)
	defer effects.Stop()

	st.Dispatch(InitAction{CollectionID: "c1", SubmissionID: "s1"})

	waitFor(t, func() bool {
		return len(st.State().Definitions) > 0
	}, "definitions to load")

	state := st.State()
	if len(state.Definitions) != 1 {
		t.Errorf("expected invalid definition to be dropped, got %d definitions", len(state.Definitions))
	}
	if _, ok := state.Definitions["good"]; !ok {
		t.Error("expected the valid definition to survive")
	}
}

func TestEffectsInitFailureRecordsError(t *testing.T) {
	source := &fakeConfigSource{defsErr: errors.New("upstream unavailable")}

	st := NewStore()
	defer st.Close()
	effects := NewEffects(context.Background(), st, source, nil)
	defer effects.Stop()

	st.Dispatch(InitAction{CollectionID: "c1", SubmissionID: "s1"})

	waitFor(t, func() bool {
		return st.State().LastError != ""
	}, "failure to be recorded")

	if got := st.State().LastError; got != "upstream unavailable" {
		t.Errorf("unexpected error recorded: %q", got)
	}
	if len(st.State().Sections) != 0 {
		t.Error("expected no sections after a failed init")
	}
}

func TestEffectsNoDefaultSkipsSections(t *testing.T) {
	source := &fakeConfigSource{
		definitions: []types.SubmissionDefinition{{ID: "thesis", Name: "Thesis"}},
	}

	st := NewStore()
	defer st.Close()
	effects := NewEffects(context.Background(), st, source, nil)
	defer effects.Stop()

	st.Dispatch(InitAction{CollectionID: "c1", SubmissionID: "s1"})

	waitFor(t, func() bool {
		return len(st.State().Definitions) > 0
	}, "definitions to load")

	// Give the effect loop a beat to process the initialized action.
	time.Sleep(50 * time.Millisecond)

	source.mu.Lock()
	defer source.mu.Unlock()
	if source.sectionCalls != 0 {
		t.Errorf("expected no section fetch without a default definition, got %d calls", source.sectionCalls)
	}
}
