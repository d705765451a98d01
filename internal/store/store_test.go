package store

import (
	"testing"
	"time"
)

type counter struct {
	Count int
	Label string
}

type incAction struct{ By int }

func (incAction) Type() string { return "inc" }

type labelAction struct{ Label string }

func (labelAction) Type() string { return "label" }

func counterReducer(s counter, a Action) counter {
	switch act := a.(type) {
	case incAction:
		s.Count += act.By
	case labelAction:
		s.Label = act.Label
	}
	return s
}

func recv[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		if !ok {
			t.Fatal("channel closed")
		}
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for emission")
	}
	panic("unreachable")
}

func TestDispatchUpdatesState(t *testing.T) {
	s := New(counterReducer, counter{})
	defer s.Close()

	s.Dispatch(incAction{By: 2})
	s.Dispatch(incAction{By: 3})

	if got := s.State().Count; got != 5 {
		t.Errorf("expected count 5, got %d", got)
	}
}

func TestSubscribeEmitsCurrentThenUpdates(t *testing.T) {
	s := New(counterReducer, counter{Count: 1})
	defer s.Close()

	states, cancel := s.Subscribe()
	defer cancel()

	if got := recv(t, states); got.Count != 1 {
		t.Errorf("expected initial count 1, got %d", got.Count)
	}

	s.Dispatch(incAction{By: 1})
	if got := recv(t, states); got.Count != 2 {
		t.Errorf("expected count 2, got %d", got.Count)
	}
}

func TestSelectIsDistinct(t *testing.T) {
	s := New(counterReducer, counter{})
	defer s.Close()

	counts, cancel := Select(s, func(c counter) int { return c.Count })
	defer cancel()

	if got := recv(t, counts); got != 0 {
		t.Errorf("expected initial 0, got %d", got)
	}

	// Label changes must not re-emit an unchanged count.
	s.Dispatch(labelAction{Label: "a"})
	s.Dispatch(labelAction{Label: "b"})
	s.Dispatch(incAction{By: 1})

	if got := recv(t, counts); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestActionsStream(t *testing.T) {
	s := New(counterReducer, counter{})
	defer s.Close()

	actions, cancel := s.Actions()
	defer cancel()

	s.Dispatch(incAction{By: 1})
	if got := recv(t, actions); got.Type() != "inc" {
		t.Errorf("expected inc action, got %s", got.Type())
	}
}

func TestLaggingSubscriberKeepsLatestState(t *testing.T) {
	s := New(counterReducer, counter{})
	defer s.Close()

	states, cancel := s.Subscribe()
	defer cancel()

	// Overrun the buffer without consuming. Intermediate states may be
	// dropped, but the newest state must survive.
	n := subBuffer + 8
	for i := 0; i < n; i++ {
		s.Dispatch(incAction{By: 1})
	}

	var last counter
	for {
		select {
		case v := <-states:
			last = v
			continue
		default:
		}
		break
	}
	if last.Count != n {
		t.Errorf("expected latest state count %d, got %d", n, last.Count)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	s := New(counterReducer, counter{})
	defer s.Close()

	_, cancel := s.Subscribe()
	cancel()
	cancel()

	// Store still functions after a released subscription.
	s.Dispatch(incAction{By: 1})
	if got := s.State().Count; got != 1 {
		t.Errorf("expected count 1, got %d", got)
	}
}

func TestCloseStopsDispatch(t *testing.T) {
	s := New(counterReducer, counter{})
	states, cancel := s.Subscribe()
	defer cancel()

	recv(t, states) // initial

	s.Close()
	s.Dispatch(incAction{By: 1})

	if got := s.State().Count; got != 0 {
		t.Errorf("dispatch after close should be ignored, got count %d", got)
	}
	if _, ok := <-states; ok {
		t.Error("expected subscription channel closed")
	}
}
