package remotedata

import (
	"errors"
	"testing"
)

func TestStates(t *testing.T) {
	t.Run("loading", func(t *testing.T) {
		rd := Loading[int]()
		if !rd.IsLoading() || rd.HasSucceeded() || rd.HasFailed() {
			t.Errorf("unexpected state: %s", rd.State())
		}
		if _, ok := rd.Payload(); ok {
			t.Error("loading envelope should not expose a payload")
		}
		if rd.Err() != nil {
			t.Errorf("loading envelope should have nil error, got %v", rd.Err())
		}
	})

	t.Run("success", func(t *testing.T) {
		rd := Success(42)
		if !rd.HasSucceeded() {
			t.Errorf("unexpected state: %s", rd.State())
		}
		payload, ok := rd.Payload()
		if !ok || payload != 42 {
			t.Errorf("expected payload 42, got %d (ok=%v)", payload, ok)
		}
	})

	t.Run("failure", func(t *testing.T) {
		sentinel := errors.New("boom")
		rd := Failure[int](sentinel)
		if !rd.HasFailed() {
			t.Errorf("unexpected state: %s", rd.State())
		}
		if !errors.Is(rd.Err(), sentinel) {
			t.Errorf("expected sentinel error, got %v", rd.Err())
		}
		if _, ok := rd.Payload(); ok {
			t.Error("failed envelope should not expose a payload")
		}
	})
}

