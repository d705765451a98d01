package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/atriumhq/atrium/internal/api"
	"github.com/atriumhq/atrium/internal/browse"
)

// UpdateBrowseEndpoint handles PATCH /api/browse/{id}.
type UpdateBrowseEndpoint struct{}

func (e *UpdateBrowseEndpoint) Route() (string, string, http.HandlerFunc) {
	return "PATCH", "/api/browse/{id}", e.handler
}

func (e *UpdateBrowseEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Apply a parameter snapshot
//	@Description	Replace the session's browse parameters wholesale and refetch
//	@Tags			browse
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Session ID"
//	@Param			request	body		BrowseRequest	true	"New parameter snapshot"
//	@Success		200		{object}	BrowseStateResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		410		{object}	ErrorResponse
//	@Router			/api/browse/{id} [patch]
func (e *UpdateBrowseEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	var req BrowseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if !applySnapshot(w, r, s, req) {
		return
	}
	writeJSON(w, http.StatusOK, browseState(s))
}

func (e *UpdateBrowseEndpoint) Command(getServerURL func() string) *cobra.Command {
	var (
		browseID   string
		scope      string
		startsWith string
		value      string
		authority  string
	)
	cmd := &cobra.Command{
		Use:   "update <session-id>",
		Short: "Apply a new parameter snapshot to a browse session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := api.NewClient(getServerURL())

			req := BrowseRequest{Query: map[string]string{}}
			if browseID != "" {
				req.Route = map[string]string{browse.ParamBrowseID: browseID}
			}
			if scope != "" {
				req.Query[browse.ParamScope] = scope
			}
			if startsWith != "" {
				req.Query[browse.ParamStartsWith] = startsWith
			}
			if value != "" {
				req.Query[browse.ParamValue] = value
			}
			if authority != "" {
				req.Query[browse.ParamAuthority] = authority
			}

			var resp BrowseStateResponse
			if err := client.Patch(ctx, "/api/browse/"+args[0], req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&browseID, "browse-id", "", "browse definition to switch to")
	cmd.Flags().StringVar(&scope, "scope", "", "restrict to a community or collection id")
	cmd.Flags().StringVar(&startsWith, "starts-with", "", "prefix bucket to jump to")
	cmd.Flags().StringVar(&value, "value", "", "entry value to list items for")
	cmd.Flags().StringVar(&authority, "authority", "", "authority key of the entry value")
	return cmd
}
