package repo

import (
	"context"
	"fmt"
	"net/url"

	"github.com/atriumhq/atrium/internal/types"
)

type definitionsResponse struct {
	Definitions []types.SubmissionDefinition `json:"definitions"`
}

type sectionsResponse struct {
	Sections []types.SubmissionSection `json:"sections"`
}

// Definitions fetches all submission form definitions configured upstream.
func (c *Client) Definitions(ctx context.Context) ([]types.SubmissionDefinition, error) {
	var resp definitionsResponse
	if err := c.get(ctx, "/api/config/submissiondefinitions", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching submission definitions: %w", err)
	}
	return resp.Definitions, nil
}

// Sections fetches the section layout for one
// collection/submission/definition triple.
func (c *Client) Sections(ctx context.Context, collectionID, submissionID, definitionID string) ([]types.SubmissionSection, error) {
	vals := url.Values{}
	vals.Set("collection", collectionID)
	vals.Set("submission", submissionID)

	var resp sectionsResponse
	path := fmt.Sprintf("/api/config/submissiondefinitions/%s/sections", url.PathEscape(definitionID))
	if err := c.get(ctx, path, vals, &resp); err != nil {
		return nil, fmt.Errorf("fetching sections for definition %q: %w", definitionID, err)
	}
	return resp.Sections, nil
}
