package endpoints

import (
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/atriumhq/atrium/internal/api"
	"github.com/atriumhq/atrium/internal/browse"
)

// NextPageEndpoint handles POST /api/browse/{id}/next.
type NextPageEndpoint struct{}

func (e *NextPageEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/browse/{id}/next", e.handler
}

func (e *NextPageEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Go to the next page
//	@Description	Advance the populated result slot one page. A no-op when no page is loaded or the last page is showing.
//	@Tags			browse
//	@Produce		json
//	@Param			id	path		string	true	"Session ID"
//	@Success		200	{object}	BrowseStateResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		410	{object}	ErrorResponse
//	@Router			/api/browse/{id}/next [post]
func (e *NextPageEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	err := s.Coordinator.GoNext(r.Context())
	if errors.Is(err, browse.ErrClosed) {
		writeError(w, http.StatusGone, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, browseState(s))
}

func (e *NextPageEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "next <session-id>",
		Short: "Advance a browse session one page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := api.NewClient(getServerURL())
			var resp BrowseStateResponse
			if err := client.Post(ctx, "/api/browse/"+args[0]+"/next", nil, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// PrevPageEndpoint handles POST /api/browse/{id}/prev.
type PrevPageEndpoint struct{}

func (e *PrevPageEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/browse/{id}/prev", e.handler
}

func (e *PrevPageEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Go to the previous page
//	@Description	Move the populated result slot back one page. A no-op when no page is loaded or the first page is showing.
//	@Tags			browse
//	@Produce		json
//	@Param			id	path		string	true	"Session ID"
//	@Success		200	{object}	BrowseStateResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		410	{object}	ErrorResponse
//	@Router			/api/browse/{id}/prev [post]
func (e *PrevPageEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	err := s.Coordinator.GoPrev(r.Context())
	if errors.Is(err, browse.ErrClosed) {
		writeError(w, http.StatusGone, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, browseState(s))
}

func (e *PrevPageEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "prev <session-id>",
		Short: "Move a browse session back one page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := api.NewClient(getServerURL())
			var resp BrowseStateResponse
			if err := client.Post(ctx, "/api/browse/"+args[0]+"/prev", nil, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
