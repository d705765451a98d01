package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/atriumhq/atrium/internal/api"
	"github.com/atriumhq/atrium/internal/svcctx"
)

// CloseBrowseEndpoint handles DELETE /api/browse/{id}.
type CloseBrowseEndpoint struct{}

func (e *CloseBrowseEndpoint) Route() (string, string, http.HandlerFunc) {
	return "DELETE", "/api/browse/{id}", e.handler
}

func (e *CloseBrowseEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Close a browse session
//	@Description	Release the session's subscriptions and clear its pagination state
//	@Tags			browse
//	@Produce		json
//	@Param			id	path	string	true	"Session ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/browse/{id} [delete]
func (e *CloseBrowseEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "session id is required")
		return
	}

	sessions := svcctx.SessionsFrom(r.Context())
	if sessions == nil {
		writeError(w, http.StatusServiceUnavailable, "session manager not initialized")
		return
	}

	if err := sessions.Close(id); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (e *CloseBrowseEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "close <session-id>",
		Short: "Close a browse session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := api.NewClient(getServerURL())
			if err := client.Delete(ctx, "/api/browse/"+args[0]); err != nil {
				return err
			}
			cmd.Println("session closed")
			return nil
		},
	}
}
