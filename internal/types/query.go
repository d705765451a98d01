package types

// BrowseQuery is the query descriptor for one browse fetch. It is
// constructed fresh on every parameter change and treated as immutable once
// handed to the data layer.
type BrowseQuery struct {
	// BrowseID names the metadata browse definition (e.g. "author", "title").
	BrowseID string `json:"browse_id"`

	Pagination Pagination `json:"pagination"`
	Sort       Sort       `json:"sort"`

	// StartsWith is a prefix bucket narrowing the listing. It holds a
	// string, an int64 for numeric buckets (year browses), or nil when no
	// prefix filter applies.
	StartsWith any `json:"starts_with,omitempty"`

	// Scope restricts the browse to one parent community or collection.
	Scope string `json:"scope,omitempty"`
}
