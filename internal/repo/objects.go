package repo

import (
	"context"
	"fmt"
	"net/url"

	"github.com/atriumhq/atrium/internal/types"
)

// FindByID resolves a repository object (community, collection, or item)
// by its id.
func (c *Client) FindByID(ctx context.Context, id string) (types.RepoObject, error) {
	var obj types.RepoObject
	path := fmt.Sprintf("/api/core/objects/%s", url.PathEscape(id))
	if err := c.get(ctx, path, nil, &obj); err != nil {
		return types.RepoObject{}, fmt.Errorf("resolving object %q: %w", id, err)
	}
	return obj, nil
}
