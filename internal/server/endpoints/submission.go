package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/atriumhq/atrium/internal/api"
	"github.com/atriumhq/atrium/internal/submission"
	"github.com/atriumhq/atrium/internal/svcctx"
	"github.com/atriumhq/atrium/internal/types"
)

// ListDefinitionsEndpoint handles GET /api/submission/definitions.
type ListDefinitionsEndpoint struct{}

func (e *ListDefinitionsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/submission/definitions", e.handler
}

func (e *ListDefinitionsEndpoint) RequiresInit() bool { return true }

// DefinitionsResponse lists the validated definitions currently in shared
// state together with the resolved default.
type DefinitionsResponse struct {
	Definitions []types.SubmissionDefinition `json:"definitions"`
	DefaultID   string                       `json:"default_id,omitempty"`
}

// handler godoc
//
//	@Summary		List submission definitions
//	@Description	Return the validated definitions loaded into shared state and the resolved default
//	@Tags			submission
//	@Produce		json
//	@Success		200	{object}	DefinitionsResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/api/submission/definitions [get]
func (e *ListDefinitionsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	st := svcctx.SubmissionStoreFrom(r.Context())
	if st == nil {
		writeError(w, http.StatusServiceUnavailable, "submission store not initialized")
		return
	}

	state := st.State()
	resp := DefinitionsResponse{
		Definitions: make([]types.SubmissionDefinition, 0, len(state.Definitions)),
		DefaultID:   submission.DefaultDefinitionID(state.Definitions),
	}
	for _, d := range state.Definitions {
		resp.Definitions = append(resp.Definitions, d)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (e *ListDefinitionsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List loaded submission definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := api.NewClient(getServerURL())
			var resp DefinitionsResponse
			if err := client.Get(ctx, "/api/submission/definitions", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// InitWorkspaceRequest names the workspace to bootstrap.
type InitWorkspaceRequest struct {
	CollectionID string `json:"collection_id"`
	SubmissionID string `json:"submission_id"`
}

// InitWorkspaceEndpoint handles POST /api/workspaces.
type InitWorkspaceEndpoint struct{}

func (e *InitWorkspaceEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/workspaces", e.handler
}

func (e *InitWorkspaceEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Initialize a submission workspace
//	@Description	Start submission form bootstrap for a collection/submission pair. Idempotent for the same pair.
//	@Tags			submission
//	@Accept			json
//	@Produce		json
//	@Param			request	body		InitWorkspaceRequest	true	"Workspace ids"
//	@Success		202		{object}	submission.Status
//	@Failure		400		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/workspaces [post]
func (e *InitWorkspaceEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req InitWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	workspaces := svcctx.WorkspacesFrom(r.Context())
	if workspaces == nil {
		writeError(w, http.StatusServiceUnavailable, "workspace registry not initialized")
		return
	}

	b, err := workspaces.Init(req.CollectionID, req.SubmissionID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusAccepted, b.Status())
}

func (e *InitWorkspaceEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "init <collection-id> <submission-id>",
		Short: "Initialize a submission workspace",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := api.NewClient(getServerURL())
			req := InitWorkspaceRequest{CollectionID: args[0], SubmissionID: args[1]}
			var status submission.Status
			if err := client.Post(ctx, "/api/workspaces", req, &status); err != nil {
				return err
			}
			return api.Output(status)
		},
	}
}

// WorkspaceStatusEndpoint handles GET /api/workspaces/{collection}/{submission}.
type WorkspaceStatusEndpoint struct{}

func (e *WorkspaceStatusEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/workspaces/{collection}/{submission}", e.handler
}

func (e *WorkspaceStatusEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Get workspace bootstrap status
//	@Description	Return the bootstrap state machine snapshot for a workspace
//	@Tags			submission
//	@Produce		json
//	@Param			collection	path		string	true	"Collection ID"
//	@Param			submission	path		string	true	"Submission ID"
//	@Success		200			{object}	submission.Status
//	@Failure		404			{object}	ErrorResponse
//	@Failure		503			{object}	ErrorResponse
//	@Router			/api/workspaces/{collection}/{submission} [get]
func (e *WorkspaceStatusEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	workspaces := svcctx.WorkspacesFrom(r.Context())
	if workspaces == nil {
		writeError(w, http.StatusServiceUnavailable, "workspace registry not initialized")
		return
	}

	b, err := workspaces.Get(r.PathValue("collection"), r.PathValue("submission"))
	if errors.Is(err, submission.ErrWorkspaceNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, b.Status())
}

func (e *WorkspaceStatusEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "status <collection-id> <submission-id>",
		Short: "Get workspace bootstrap status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := api.NewClient(getServerURL())
			var status submission.Status
			if err := client.Get(ctx, "/api/workspaces/"+args[0]+"/"+args[1], &status); err != nil {
				return err
			}
			return api.Output(status)
		},
	}
}
