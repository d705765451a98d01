// Package store is a small dispatch/select state container. State is owned
// by a single reducer; components observe slices of it through selector
// streams, and effects observe the action stream to trigger asynchronous
// work that dispatches further actions.
package store

import (
	"sync"
)

// Action is a dispatched event. Type identifies the action kind for
// reducers and effects.
type Action interface {
	Type() string
}

// Reducer produces the next state from the current state and an action.
// Reducers must not mutate the current state in place.
type Reducer[S any] func(S, Action) S

// subscriber buffer size. Dispatch never blocks; a consumer that falls this
// far behind loses intermediate emissions, never the latest state.
const subBuffer = 64

// Store holds state of type S and fans out changes to subscribers.
type Store[S any] struct {
	mu       sync.Mutex
	state    S
	reducer  Reducer[S]
	states   map[int]chan S
	actions  map[int]chan Action
	nextID   int
	closed   bool
}

// New creates a store with the given reducer and initial state.
func New[S any](reducer Reducer[S], initial S) *Store[S] {
	return &Store[S]{
		reducer: reducer,
		states:  make(map[int]chan S),
		actions: make(map[int]chan Action),
		state:   initial,
	}
}

// State returns the current state.
func (s *Store[S]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch runs the reducer and notifies state subscribers and action
// observers. Dispatching on a closed store is a no-op.
func (s *Store[S]) Dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.state = s.reducer(s.state, a)

	for _, ch := range s.states {
		send(ch, s.state)
	}
	for _, ch := range s.actions {
		send(ch, a)
	}
}

// send delivers v without blocking. A full buffer drops its oldest value to
// make room, so a lagging consumer always sees the newest emission.
func send[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}

// Subscribe returns a stream of states emitted after each dispatch,
// starting with the current state. The returned cancel func releases the
// subscription; it is safe to call more than once.
func (s *Store[S]) Subscribe() (<-chan S, func()) {
	ch := make(chan S, subBuffer)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := s.nextID
	s.nextID++
	s.states[id] = ch
	ch <- s.state
	s.mu.Unlock()

	return ch, s.cancelState(id)
}

// Actions returns a stream of dispatched actions for effect handlers.
func (s *Store[S]) Actions() (<-chan Action, func()) {
	ch := make(chan Action, subBuffer)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := s.nextID
	s.nextID++
	s.actions[id] = ch
	s.mu.Unlock()

	return ch, s.cancelAction(id)
}

func (s *Store[S]) cancelState(id int) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			ch, ok := s.states[id]
			if ok {
				delete(s.states, id)
			}
			s.mu.Unlock()
			if ok {
				close(ch)
			}
		})
	}
}

func (s *Store[S]) cancelAction(id int) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			ch, ok := s.actions[id]
			if ok {
				delete(s.actions, id)
			}
			s.mu.Unlock()
			if ok {
				close(ch)
			}
		})
	}
}

// Close releases all subscriptions. Further dispatches are ignored.
func (s *Store[S]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	states := s.states
	actions := s.actions
	s.states = make(map[int]chan S)
	s.actions = make(map[int]chan Action)
	s.mu.Unlock()

	for _, ch := range states {
		close(ch)
	}
	for _, ch := range actions {
		close(ch)
	}
}

// Select derives a distinct-value stream from a store. The selector runs on
// every state emission; a value is forwarded only when it differs from the
// previous one. The first value is emitted immediately.
func Select[S any, T comparable](s *Store[S], sel func(S) T) (<-chan T, func()) {
	states, cancel := s.Subscribe()
	out := make(chan T, subBuffer)

	go func() {
		defer close(out)
		var last T
		first := true
		for state := range states {
			v := sel(state)
			if !first && v == last {
				continue
			}
			first = false
			last = v
			send(out, v)
		}
	}()

	return out, cancel
}
