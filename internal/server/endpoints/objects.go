package endpoints

import (
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/atriumhq/atrium/internal/api"
	"github.com/atriumhq/atrium/internal/repo"
	"github.com/atriumhq/atrium/internal/svcctx"
	"github.com/atriumhq/atrium/internal/types"
)

// GetObjectEndpoint handles GET /api/objects/{id}.
type GetObjectEndpoint struct{}

func (e *GetObjectEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/objects/{id}", e.handler
}

func (e *GetObjectEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Get repository object by ID
//	@Description	Resolve a community, collection, or item from the upstream repository
//	@Tags			objects
//	@Produce		json
//	@Param			id	path		string	true	"Object ID"
//	@Success		200	{object}	types.RepoObject
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		502	{object}	ErrorResponse
//	@Router			/api/objects/{id} [get]
func (e *GetObjectEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "object id is required")
		return
	}

	client := svcctx.RepoClientFrom(r.Context())
	if client == nil {
		writeError(w, http.StatusServiceUnavailable, "upstream client not initialized")
		return
	}

	obj, err := client.FindByID(r.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		writeError(w, http.StatusNotFound, "object not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, obj)
}

func (e *GetObjectEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a repository object by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := api.NewClient(getServerURL())
			var obj types.RepoObject
			if err := client.Get(ctx, "/api/objects/"+args[0], &obj); err != nil {
				return err
			}
			return api.Output(obj)
		},
	}
}
