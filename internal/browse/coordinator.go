package browse

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/atriumhq/atrium/internal/pagination"
	"github.com/atriumhq/atrium/internal/remotedata"
	"github.com/atriumhq/atrium/internal/repo"
	"github.com/atriumhq/atrium/internal/types"
)

// ErrClosed is returned when a coordinator is used after Close.
var ErrClosed = errors.New("browse coordinator closed")

// DataSource is the data-fetch collaborator the coordinator drives. It is
// satisfied by *repo.Client.
type DataSource interface {
	Entries(ctx context.Context, q types.BrowseQuery) (repo.EntriesPage, error)
	Items(ctx context.Context, value, authority string, q types.BrowseQuery) (repo.ItemsPage, error)
	NextEntries(ctx context.Context, p repo.EntriesPage) (repo.EntriesPage, error)
	PrevEntries(ctx context.Context, p repo.EntriesPage) (repo.EntriesPage, error)
	NextItems(ctx context.Context, p repo.ItemsPage) (repo.ItemsPage, error)
	PrevItems(ctx context.Context, p repo.ItemsPage) (repo.ItemsPage, error)
	FindByID(ctx context.Context, id string) (types.RepoObject, error)
}

// Config configures a coordinator.
type Config struct {
	// Source is the data-fetch collaborator (required).
	Source DataSource
	// Pager is the pagination registry the coordinator acquires its key in
	// (required).
	Pager *pagination.Registry
	// Key is the pagination state key. State under this key is shared
	// process-wide; the coordinator owns clearing it on Close.
	Key string
	// DefaultBrowseID is used when no browse id parameter is present.
	DefaultBrowseID string
	// Defaults seed pagination/sort state for a fresh key.
	Defaults pagination.Defaults
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Coordinator holds the state of one active browse: the two mutually
// exclusive result slots, the optional parent object, and the current
// parameter-derived identity. A coordinator is created at activation,
// applies each parameter snapshot wholesale, and is closed at deactivation.
type Coordinator struct {
	source    DataSource
	handle    *pagination.Handle
	key       string
	defaultID string
	logger    *slog.Logger

	mu         sync.Mutex
	entries    remotedata.RemoteData[repo.EntriesPage]
	items      remotedata.RemoteData[repo.ItemsPage]
	parent     remotedata.RemoteData[types.RepoObject]
	parentID   string
	browseID   string
	value      any
	authority  string
	startsWith any
	releases   []func()
	closed     bool
}

// NewCoordinator acquires the pagination key and returns a coordinator
// ready for its first Apply.
func NewCoordinator(cfg Config) (*Coordinator, error) {
	if cfg.Source == nil {
		return nil, errors.New("browse: nil data source")
	}
	if cfg.Pager == nil {
		return nil, errors.New("browse: nil pagination registry")
	}
	if cfg.Key == "" {
		return nil, errors.New("browse: empty pagination key")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Coordinator{
		source:    cfg.Source,
		handle:    cfg.Pager.Acquire(cfg.Key, cfg.Defaults),
		key:       cfg.Key,
		defaultID: cfg.DefaultBrowseID,
		logger:    logger,
	}, nil
}

// Apply reconciles one parameter snapshot and refreshes the active slot.
// The snapshot fully supersedes the previous query: the inactive slot is
// cleared, and the parent is re-resolved only when the scope changes.
func (c *Coordinator) Apply(ctx context.Context, route, query map[string]string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.mu.Unlock()

	pag, err := c.handle.Pagination()
	if err != nil {
		return err
	}
	sort, err := c.handle.Sort()
	if err != nil {
		return err
	}

	d := Reconcile(Snapshot{
		RouteParams: route,
		QueryParams: query,
		Pagination:  pag,
		Sort:        sort,
	}, c.defaultID)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.browseID = d.Query.BrowseID
	c.value = d.Value
	c.authority = d.Authority
	c.startsWith = d.Query.StartsWith
	c.mu.Unlock()

	c.resolveParent(ctx, d.Query.Scope)

	switch d.Mode {
	case ModeItems:
		page, err := c.source.Items(ctx, fmt.Sprint(d.Value), d.Authority, d.Query)
		if err != nil {
			if !c.updatePageWithItems(remotedata.Failure[repo.ItemsPage](err)) {
				return ErrClosed
			}
			return err
		}
		if !c.updatePageWithItems(remotedata.Success(page)) {
			return ErrClosed
		}
	default:
		page, err := c.source.Entries(ctx, d.Query)
		if err != nil {
			if !c.updatePage(remotedata.Failure[repo.EntriesPage](err)) {
				return ErrClosed
			}
			return err
		}
		if !c.updatePage(remotedata.Success(page)) {
			return ErrClosed
		}
	}
	return nil
}

// updatePage sets the entries slot and clears the items slot. The write is
// dropped when the coordinator closed while the fetch was in flight.
func (c *Coordinator) updatePage(rd remotedata.RemoteData[repo.EntriesPage]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	c.entries = rd
	c.items = remotedata.RemoteData[repo.ItemsPage]{}
	return true
}

// updatePageWithItems sets the items slot and clears the entries slot. The
// write is dropped when the coordinator closed while the fetch was in flight.
func (c *Coordinator) updatePageWithItems(rd remotedata.RemoteData[repo.ItemsPage]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	c.items = rd
	c.entries = remotedata.RemoteData[repo.EntriesPage]{}
	return true
}

// resolveParent resolves the scope object by id and keeps the first
// successful result. No scope leaves the parent unresolved with no fetch.
func (c *Coordinator) resolveParent(ctx context.Context, scope string) {
	c.mu.Lock()
	if scope == "" {
		c.parent = remotedata.RemoteData[types.RepoObject]{}
		c.parentID = ""
		c.mu.Unlock()
		return
	}
	if scope == c.parentID && c.parent.HasSucceeded() {
		c.mu.Unlock()
		return
	}
	c.parentID = scope
	c.parent = remotedata.Loading[types.RepoObject]()
	c.mu.Unlock()

	obj, err := c.source.FindByID(ctx, scope)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.parentID != scope {
		// Teardown ran or a newer snapshot changed the scope while we
		// were fetching.
		return
	}
	if err != nil {
		c.logger.Warn("failed to resolve browse scope", "scope", scope, "error", err)
		c.parent = remotedata.Failure[types.RepoObject](err)
		return
	}
	c.parent = remotedata.Success(obj)
}

// GoNext requests the page after whichever slot is currently populated.
// It is a no-op when neither slot holds a successful page.
func (c *Coordinator) GoNext(ctx context.Context) error {
	return c.turnPage(ctx, c.source.NextEntries, c.source.NextItems)
}

// GoPrev requests the page before whichever slot is currently populated.
// It is a no-op when neither slot holds a successful page.
func (c *Coordinator) GoPrev(ctx context.Context) error {
	return c.turnPage(ctx, c.source.PrevEntries, c.source.PrevItems)
}

func (c *Coordinator) turnPage(
	ctx context.Context,
	turnEntries func(context.Context, repo.EntriesPage) (repo.EntriesPage, error),
	turnItems func(context.Context, repo.ItemsPage) (repo.ItemsPage, error),
) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	entries, entriesOK := c.entries.Payload()
	items, itemsOK := c.items.Payload()
	c.mu.Unlock()

	switch {
	case itemsOK:
		page, err := turnItems(ctx, items)
		if errors.Is(err, repo.ErrNoAdjacentPage) {
			return nil
		}
		if err != nil {
			if !c.updatePageWithItems(remotedata.Failure[repo.ItemsPage](err)) {
				return ErrClosed
			}
			return err
		}
		if !c.updatePageWithItems(remotedata.Success(page)) {
			return ErrClosed
		}
		return c.handle.SetPagination(types.Pagination{Page: page.Page.Page, PageSize: page.PageSize})
	case entriesOK:
		page, err := turnEntries(ctx, entries)
		if errors.Is(err, repo.ErrNoAdjacentPage) {
			return nil
		}
		if err != nil {
			if !c.updatePage(remotedata.Failure[repo.EntriesPage](err)) {
				return ErrClosed
			}
			return err
		}
		if !c.updatePage(remotedata.Success(page)) {
			return ErrClosed
		}
		return c.handle.SetPagination(types.Pagination{Page: page.Page.Page, PageSize: page.PageSize})
	default:
		// Neither slot populated: no fetch, no mutation.
		return nil
	}
}

// Track registers a release func (a subscription cancel) to run on Close.
// Tracking on a closed coordinator runs the release immediately.
func (c *Coordinator) Track(release func()) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		release()
		return
	}
	c.releases = append(c.releases, release)
	c.mu.Unlock()
}

// State is a read-only view of the coordinator for rendering.
type State struct {
	BrowseID   string
	Value      any
	Authority  string
	StartsWith any
	Entries    remotedata.RemoteData[repo.EntriesPage]
	Items      remotedata.RemoteData[repo.ItemsPage]
	Parent     remotedata.RemoteData[types.RepoObject]
}

// State returns the current browse page state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		BrowseID:   c.browseID,
		Value:      c.value,
		Authority:  c.authority,
		StartsWith: c.startsWith,
		Entries:    c.entries,
		Items:      c.items,
		Parent:     c.parent,
	}
}

// Close releases every tracked subscription and clears the pagination key.
// Close is idempotent; releases already run are not run again.
func (c *Coordinator) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	releases := c.releases
	c.releases = nil
	c.mu.Unlock()

	for _, release := range releases {
		release()
	}
	c.handle.Release()
}
