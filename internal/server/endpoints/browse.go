package endpoints

import (
	"errors"
	"net/http"

	"github.com/atriumhq/atrium/internal/browse"
	"github.com/atriumhq/atrium/internal/remotedata"
	"github.com/atriumhq/atrium/internal/repo"
	"github.com/atriumhq/atrium/internal/session"
	"github.com/atriumhq/atrium/internal/svcctx"
	"github.com/atriumhq/atrium/internal/types"
)

// BrowseRequest carries one parameter snapshot for a browse session. Route
// and query parameters are merged by the coordinator, query winning on
// collisions.
type BrowseRequest struct {
	Route map[string]string `json:"route,omitempty"`
	Query map[string]string `json:"query,omitempty"`

	// PaginationID optionally names the shared pagination state key. When
	// empty a fresh key is generated for the session.
	PaginationID string `json:"pagination_id,omitempty"`
}

// RemoteView is the JSON projection of a remote fetch envelope.
type RemoteView[T any] struct {
	State   string `json:"state"`
	Payload *T     `json:"payload,omitempty"`
	Error   string `json:"error,omitempty"`
}

func viewOf[T any](rd remotedata.RemoteData[T]) *RemoteView[T] {
	switch rd.State() {
	case remotedata.StateLoading:
		return &RemoteView[T]{State: string(remotedata.StateLoading)}
	case remotedata.StateSucceeded:
		payload, _ := rd.Payload()
		return &RemoteView[T]{State: string(remotedata.StateSucceeded), Payload: &payload}
	case remotedata.StateFailed:
		return &RemoteView[T]{State: string(remotedata.StateFailed), Error: rd.Err().Error()}
	default:
		return nil
	}
}

// BrowseStateResponse is the rendered state of one browse session. At most
// one of Entries and Items is populated.
type BrowseStateResponse struct {
	SessionID  string                        `json:"session_id"`
	BrowseID   string                        `json:"browse_id"`
	Value      any                           `json:"value,omitempty"`
	Authority  string                        `json:"authority,omitempty"`
	StartsWith any                           `json:"starts_with,omitempty"`
	Entries    *RemoteView[repo.EntriesPage] `json:"entries,omitempty"`
	Items      *RemoteView[repo.ItemsPage]   `json:"items,omitempty"`
	Parent     *RemoteView[types.RepoObject] `json:"parent,omitempty"`
}

func browseState(s *session.Session) BrowseStateResponse {
	state := s.Coordinator.State()
	return BrowseStateResponse{
		SessionID:  s.ID,
		BrowseID:   state.BrowseID,
		Value:      state.Value,
		Authority:  state.Authority,
		StartsWith: state.StartsWith,
		Entries:    viewOf(state.Entries),
		Items:      viewOf(state.Items),
		Parent:     viewOf(state.Parent),
	}
}

// sessionFrom resolves the {id} path value to an open session, writing the
// error response itself when resolution fails.
func sessionFrom(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "session id is required")
		return nil, false
	}

	sessions := svcctx.SessionsFrom(r.Context())
	if sessions == nil {
		writeError(w, http.StatusServiceUnavailable, "session manager not initialized")
		return nil, false
	}

	s, err := sessions.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	return s, true
}

// applySnapshot feeds one snapshot into a session's coordinator. Fetch
// failures are not HTTP errors; they surface in the returned envelopes.
// Only a closed coordinator aborts the request.
func applySnapshot(w http.ResponseWriter, r *http.Request, s *session.Session, req BrowseRequest) bool {
	err := s.Coordinator.Apply(r.Context(), req.Route, req.Query)
	if errors.Is(err, browse.ErrClosed) {
		writeError(w, http.StatusGone, err.Error())
		return false
	}
	return true
}
