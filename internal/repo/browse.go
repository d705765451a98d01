package repo

import (
	"context"
	"fmt"
	"net/url"

	"github.com/atriumhq/atrium/internal/types"
)

// EntriesPage is one page of grouped browse entries together with the query
// that produced it, so adjacent pages can be requested from the page alone.
type EntriesPage struct {
	types.Page[types.BrowseEntry]
	Query types.BrowseQuery `json:"query"`
}

// ItemsPage is one page of items under a single entry value.
type ItemsPage struct {
	types.Page[types.Item]
	Query types.BrowseQuery `json:"query"`

	// Value and Authority identify the entry the items belong to.
	Value     string `json:"value"`
	Authority string `json:"authority,omitempty"`
}

// pageInfo is the upstream's pagination echo.
type pageInfo struct {
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
}

type entriesResponse struct {
	Entries []types.BrowseEntry `json:"entries"`
	Page    pageInfo            `json:"page"`
}

type itemsResponse struct {
	Items []types.Item `json:"items"`
	Page  pageInfo     `json:"page"`
}

// Entries fetches the grouped entry list for a browse query.
func (c *Client) Entries(ctx context.Context, q types.BrowseQuery) (EntriesPage, error) {
	vals := browseValues(q)

	var resp entriesResponse
	path := fmt.Sprintf("/api/discover/browses/%s/entries", url.PathEscape(q.BrowseID))
	if err := c.get(ctx, path, vals, &resp); err != nil {
		return EntriesPage{}, fmt.Errorf("fetching entries for %q: %w", q.BrowseID, err)
	}

	return EntriesPage{
		Page:  toPage(resp.Entries, resp.Page, q.Sort),
		Query: q,
	}, nil
}

// Items fetches the items matching one entry value, optionally scoped by the
// authority key carried alongside it.
func (c *Client) Items(ctx context.Context, value, authority string, q types.BrowseQuery) (ItemsPage, error) {
	vals := browseValues(q)
	vals.Set("filterValue", value)
	if authority != "" {
		vals.Set("filterAuthority", authority)
	}

	var resp itemsResponse
	path := fmt.Sprintf("/api/discover/browses/%s/items", url.PathEscape(q.BrowseID))
	if err := c.get(ctx, path, vals, &resp); err != nil {
		return ItemsPage{}, fmt.Errorf("fetching items for %q: %w", value, err)
	}

	return ItemsPage{
		Page:      toPage(resp.Items, resp.Page, q.Sort),
		Query:     q,
		Value:     value,
		Authority: authority,
	}, nil
}

// NextEntries requests the page after the given one.
func (c *Client) NextEntries(ctx context.Context, p EntriesPage) (EntriesPage, error) {
	if !p.HasNext() {
		return EntriesPage{}, ErrNoAdjacentPage
	}
	q := p.Query
	q.Pagination.Page = p.Page.Page + 1
	return c.Entries(ctx, q)
}

// PrevEntries requests the page before the given one.
func (c *Client) PrevEntries(ctx context.Context, p EntriesPage) (EntriesPage, error) {
	if !p.HasPrev() {
		return EntriesPage{}, ErrNoAdjacentPage
	}
	q := p.Query
	q.Pagination.Page = p.Page.Page - 1
	return c.Entries(ctx, q)
}

// NextItems requests the page after the given one.
func (c *Client) NextItems(ctx context.Context, p ItemsPage) (ItemsPage, error) {
	if !p.HasNext() {
		return ItemsPage{}, ErrNoAdjacentPage
	}
	q := p.Query
	q.Pagination.Page = p.Page.Page + 1
	return c.Items(ctx, p.Value, p.Authority, q)
}

// PrevItems requests the page before the given one.
func (c *Client) PrevItems(ctx context.Context, p ItemsPage) (ItemsPage, error) {
	if !p.HasPrev() {
		return ItemsPage{}, ErrNoAdjacentPage
	}
	q := p.Query
	q.Pagination.Page = p.Page.Page - 1
	return c.Items(ctx, p.Value, p.Authority, q)
}

// browseValues encodes the shared browse query parameters.
func browseValues(q types.BrowseQuery) url.Values {
	vals := url.Values{}
	vals.Set("page", fmt.Sprintf("%d", q.Pagination.Page))
	vals.Set("size", fmt.Sprintf("%d", q.Pagination.PageSize))
	if q.Sort.Field != "" {
		vals.Set("sort", fmt.Sprintf("%s,%s", q.Sort.Field, q.Sort.Direction))
	}
	if q.StartsWith != nil {
		vals.Set("startsWith", fmt.Sprint(q.StartsWith))
	}
	if q.Scope != "" {
		vals.Set("scope", q.Scope)
	}
	return vals
}

func toPage[T any](results []T, info pageInfo, sort types.Sort) types.Page[T] {
	return types.Page[T]{
		Results:      results,
		Page:         info.Number,
		PageSize:     info.Size,
		TotalPages:   info.TotalPages,
		TotalResults: info.TotalElements,
		Sort:         sort,
	}
}
