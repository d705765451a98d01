package pagination

import (
	"errors"
	"testing"

	"github.com/atriumhq/atrium/internal/types"
)

func testDefaults() Defaults {
	return Defaults{
		Pagination: types.Pagination{Page: 0, PageSize: 20},
		Sort:       types.Sort{Field: "default", Direction: types.SortAscending},
	}
}

func TestAcquireUsesDefaults(t *testing.T) {
	r := NewRegistry()
	h := r.Acquire("bbm", testDefaults())
	defer h.Release()

	p, err := h.Pagination()
	if err != nil {
		t.Fatalf("Pagination: %v", err)
	}
	if p.PageSize != 20 || p.Page != 0 {
		t.Errorf("unexpected pagination: %+v", p)
	}

	s, err := h.Sort()
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}
	if s.Field != "default" {
		t.Errorf("unexpected sort: %+v", s)
	}
}

func TestSharedKeySeesSameState(t *testing.T) {
	r := NewRegistry()
	a := r.Acquire("bbm", testDefaults())
	b := r.Acquire("bbm", Defaults{
		Pagination: types.Pagination{Page: 9, PageSize: 5},
	})
	defer a.Release()

	// Second acquire must not reset existing state.
	p, err := b.Pagination()
	if err != nil {
		t.Fatalf("Pagination: %v", err)
	}
	if p.PageSize != 20 {
		t.Errorf("expected shared page size 20, got %d", p.PageSize)
	}

	if err := a.SetPagination(types.Pagination{Page: 3, PageSize: 20}); err != nil {
		t.Fatalf("SetPagination: %v", err)
	}
	p, err = b.Pagination()
	if err != nil {
		t.Fatalf("Pagination: %v", err)
	}
	if p.Page != 3 {
		t.Errorf("expected shared page 3, got %d", p.Page)
	}
}

func TestReleaseClearsKey(t *testing.T) {
	r := NewRegistry()
	h := r.Acquire("bbm", testDefaults())

	h.Release()
	if r.Has("bbm") {
		t.Error("expected key cleared after release")
	}

	// Idempotent.
	h.Release()

	if _, err := h.Pagination(); !errors.Is(err, ErrReleased) {
		t.Errorf("expected ErrReleased, got %v", err)
	}
	if err := h.SetSort(types.Sort{Field: "title"}); !errors.Is(err, ErrReleased) {
		t.Errorf("expected ErrReleased, got %v", err)
	}
}

func TestClearAbsentKeyIsNoop(t *testing.T) {
	r := NewRegistry()
	r.Clear("never-acquired")
	if r.Has("never-acquired") {
		t.Error("clear should not create state")
	}
}
