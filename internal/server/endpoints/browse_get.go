package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/atriumhq/atrium/internal/api"
)

// GetBrowseEndpoint handles GET /api/browse/{id}.
type GetBrowseEndpoint struct{}

func (e *GetBrowseEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/browse/{id}", e.handler
}

func (e *GetBrowseEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Get browse session state
//	@Description	Return the current page state of a browse session
//	@Tags			browse
//	@Produce		json
//	@Param			id	path		string	true	"Session ID"
//	@Success		200	{object}	BrowseStateResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/browse/{id} [get]
func (e *GetBrowseEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, browseState(s))
}

func (e *GetBrowseEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <session-id>",
		Short: "Get browse session state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := api.NewClient(getServerURL())
			var resp BrowseStateResponse
			if err := client.Get(ctx, "/api/browse/"+args[0], &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
