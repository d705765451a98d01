package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/atriumhq/atrium/internal/api"
	"github.com/atriumhq/atrium/internal/browse"
	"github.com/atriumhq/atrium/internal/pagination"
	"github.com/atriumhq/atrium/internal/session"
	"github.com/atriumhq/atrium/internal/svcctx"
)

// OpenBrowseEndpoint handles POST /api/browse.
type OpenBrowseEndpoint struct{}

func (e *OpenBrowseEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/browse", e.handler
}

func (e *OpenBrowseEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Open a browse session
//	@Description	Create a browse session and apply the first parameter snapshot
//	@Tags			browse
//	@Accept			json
//	@Produce		json
//	@Param			request	body		BrowseRequest	true	"Initial parameter snapshot"
//	@Success		201		{object}	BrowseStateResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/browse [post]
func (e *OpenBrowseEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req BrowseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	services := svcctx.ServicesFrom(r.Context())
	if services == nil || services.RepoClient == nil || services.Sessions == nil {
		writeError(w, http.StatusServiceUnavailable, "server not fully initialized")
		return
	}

	cfg := services.ConfigManager.Get()
	pag, sort := cfg.BrowseDefaults()

	key := req.PaginationID
	if key == "" {
		key = "browse." + uuid.New().String()
	}

	coordinator, err := browse.NewCoordinator(browse.Config{
		Source:          services.RepoClient,
		Pager:           services.Pager,
		Key:             key,
		DefaultBrowseID: cfg.Browse.DefaultBrowseID,
		Defaults:        pagination.Defaults{Pagination: pag, Sort: sort},
		Logger:          services.Logger,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s, err := services.Sessions.Open(coordinator)
	if err != nil {
		coordinator.Close()
		if errors.Is(err, session.ErrLimitReached) {
			writeError(w, http.StatusTooManyRequests, err.Error())
			return
		}
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	if !applySnapshot(w, r, s, req) {
		return
	}
	writeJSON(w, http.StatusCreated, browseState(s))
}

func (e *OpenBrowseEndpoint) Command(getServerURL func() string) *cobra.Command {
	var (
		scope        string
		startsWith   string
		value        string
		paginationID string
	)
	cmd := &cobra.Command{
		Use:   "open [browse-id]",
		Short: "Open a browse session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := api.NewClient(getServerURL())

			req := BrowseRequest{
				Query:        map[string]string{},
				PaginationID: paginationID,
			}
			if len(args) > 0 {
				req.Route = map[string]string{browse.ParamBrowseID: args[0]}
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

			var resp BrowseStateResponse
			if err := client.Post(ctx, "/api/browse", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&scope, "scope", "", "restrict to a community or collection id")
	cmd.Flags().StringVar(&startsWith, "starts-with", "", "prefix bucket to jump to")
	cmd.Flags().StringVar(&value, "value", "", "entry value to list items for")
	cmd.Flags().StringVar(&paginationID, "pagination-id", "", "shared pagination state key")
	return cmd
}
