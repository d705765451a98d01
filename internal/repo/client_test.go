package repo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atriumhq/atrium/internal/types"
)

func testQuery() types.BrowseQuery {
	return types.BrowseQuery{
		BrowseID:   "author",
		Pagination: types.Pagination{Page: 0, PageSize: 20},
		Sort:       types.Sort{Field: "default", Direction: types.SortAscending},
	}
}

func entriesBody(t *testing.T, values []string, page, totalPages int) []byte {
	t.Helper()
	entries := make([]map[string]any, 0, len(values))
	for _, v := range values {
		entries = append(entries, map[string]any{"value": v, "count": 1, "browse_id": "author"})
	}
	body, err := json.Marshal(map[string]any{
		"entries": entries,
		"page": map[string]any{
			"number":        page,
			"size":          20,
			"totalPages":    totalPages,
			"totalElements": len(values),
		},
	})
	require.NoError(t, err)
	return body
}

func TestEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/discover/browses/author/entries", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "0", q.Get("page"))
		assert.Equal(t, "20", q.Get("size"))
		assert.Equal(t, "default,ASC", q.Get("sort"))
		assert.Empty(t, q.Get("startsWith"))
		w.Write(entriesBody(t, []string{"Adams", "Baker"}, 0, 3))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	page, err := c.Entries(context.Background(), testQuery())
	require.NoError(t, err)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "Adams", page.Results[0].Value)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, "author", page.Query.BrowseID)
	assert.True(t, page.HasNext())
	assert.False(t, page.HasPrev())
}

func TestEntriesEncodesStartsWithAndScope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "1987", q.Get("startsWith"))
		assert.Equal(t, "col-1", q.Get("scope"))
		w.Write(entriesBody(t, nil, 0, 0))
	}))
	defer srv.Close()

	q := testQuery()
	q.StartsWith = int64(1987)
	q.Scope = "col-1"

	c := NewClient(srv.URL, nil)
	_, err := c.Entries(context.Background(), q)
	require.NoError(t, err)
}

func TestItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/discover/browses/author/items", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "Adams, Douglas", q.Get("filterValue"))
		assert.Equal(t, "auth-42", q.Get("filterAuthority"))
		json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{{"id": "item-1", "name": "Mostly Harmless"}},
			"page":  map[string]any{"number": 0, "size": 20, "totalPages": 1, "totalElements": 1},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	page, err := c.Items(context.Background(), "Adams, Douglas", "auth-42", testQuery())
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "item-1", page.Results[0].ID)
	assert.Equal(t, "Adams, Douglas", page.Value)
	assert.Equal(t, "auth-42", page.Authority)
}

func TestNextEntriesRequestsAdjacentPage(t *testing.T) {
	var gotPage atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPage.Store(r.URL.Query().Get("page"))
		w.Write(entriesBody(t, []string{"Clark"}, 1, 3))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	prev := EntriesPage{
		Page:  types.Page[types.BrowseEntry]{Page: 0, TotalPages: 3},
		Query: testQuery(),
	}
	next, err := c.NextEntries(context.Background(), prev)
	require.NoError(t, err)
	assert.Equal(t, "1", gotPage.Load())
	assert.Equal(t, 1, next.Page.Page)
}

func TestAdjacentPageBounds(t *testing.T) {
	c := NewClient("http://unused.invalid", nil)

	t.Run("prev of first page", func(t *testing.T) {
		p := EntriesPage{Page: types.Page[types.BrowseEntry]{Page: 0, TotalPages: 2}}
		_, err := c.PrevEntries(context.Background(), p)
		assert.ErrorIs(t, err, ErrNoAdjacentPage)
	})

	t.Run("next of last page", func(t *testing.T) {
		p := ItemsPage{Page: types.Page[types.Item]{Page: 1, TotalPages: 2}}
		_, err := c.NextItems(context.Background(), p)
		assert.ErrorIs(t, err, ErrNoAdjacentPage)
	})
}

func TestRetryOnTransientFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "upstream blip", http.StatusBadGateway)
			return
		}
		w.Write(entriesBody(t, []string{"Adams"}, 0, 1))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	page, err := c.Entries(context.Background(), testQuery())
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	require.Len(t, page.Results, 1)
}

func TestNoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "bad browse id"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.Entries(context.Background(), testQuery())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad browse id")
	assert.Equal(t, int32(1), calls.Load())
}

func TestFindByID(t *testing.T) {
	t.Run("resolves object", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/core/objects/col-1", r.URL.Path)
			json.NewEncoder(w).Encode(types.RepoObject{ID: "col-1", Kind: types.KindCollection, Name: "Theses"})
		}))
		defer srv.Close()

		c := NewClient(srv.URL, nil)
		obj, err := c.FindByID(context.Background(), "col-1")
		require.NoError(t, err)
		assert.Equal(t, types.KindCollection, obj.Kind)
		assert.Equal(t, "Theses", obj.Name)
	})

	t.Run("missing object", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, nil)
		_, err := c.FindByID(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDefinitionsAndSections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/config/submissiondefinitions":
			json.NewEncoder(w).Encode(map[string]any{
				"definitions": []map[string]any{
					{"id": "traditional", "name": "Traditional", "isDefault": true},
				},
			})
		case "/api/config/submissiondefinitions/traditional/sections":
			assert.Equal(t, "c1", r.URL.Query().Get("collection"))
			assert.Equal(t, "s1", r.URL.Query().Get("submission"))
			json.NewEncoder(w).Encode(map[string]any{
				"sections": []map[string]any{
					{"id": "describe", "sectionType": "submission-form", "mandatory": true},
				},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)

	defs, err := c.Definitions(context.Background())
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.True(t, defs[0].IsDefault)

	sections, err := c.Sections(context.Background(), "c1", "s1", "traditional")
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "describe", sections[0].ID)
}

func TestClientSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sekrit", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"id": "obj-1", "kind": "collection", "name": "Theses"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, WithToken("sekrit"))
	obj, err := c.FindByID(context.Background(), "obj-1")
	require.NoError(t, err)
	assert.Equal(t, "Theses", obj.Name)
}
