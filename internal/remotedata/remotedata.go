// Package remotedata wraps asynchronous fetch results in a
// loading/success/failure envelope. Coordination logic reads only the
// success projection; failures surface through the envelope state rather
// than being handled inline.
package remotedata

// State is the lifecycle state of a remote fetch.
type State string

const (
	// StateLoading means the request has been issued but not resolved.
	StateLoading State = "loading"
	// StateSucceeded means the payload is valid.
	StateSucceeded State = "succeeded"
	// StateFailed means the request resolved with an error.
	StateFailed State = "failed"
)

// RemoteData carries a payload of type T together with its fetch state.
// The zero value is not meaningful; use Loading, Success, or Failure.
type RemoteData[T any] struct {
	state   State
	payload T
	err     error
}

// Loading returns an envelope in the loading state.
func Loading[T any]() RemoteData[T] {
	return RemoteData[T]{state: StateLoading}
}

// Success returns an envelope carrying a resolved payload.
func Success[T any](payload T) RemoteData[T] {
	return RemoteData[T]{state: StateSucceeded, payload: payload}
}

// Failure returns an envelope carrying a resolution error.
func Failure[T any](err error) RemoteData[T] {
	return RemoteData[T]{state: StateFailed, err: err}
}

// State returns the envelope state.
func (r RemoteData[T]) State() State { return r.state }

// HasSucceeded reports whether the payload is valid.
func (r RemoteData[T]) HasSucceeded() bool { return r.state == StateSucceeded }

// HasFailed reports whether the fetch resolved with an error.
func (r RemoteData[T]) HasFailed() bool { return r.state == StateFailed }

// IsLoading reports whether the fetch is still unresolved.
func (r RemoteData[T]) IsLoading() bool { return r.state == StateLoading }

// Payload returns the payload and whether it is valid.
func (r RemoteData[T]) Payload() (T, bool) {
	return r.payload, r.state == StateSucceeded
}

// Err returns the resolution error, or nil outside the failed state.
func (r RemoteData[T]) Err() error {
	if r.state != StateFailed {
		return nil
	}
	return r.err
}
