package types

// ObjectKind identifies the kind of repository object.
type ObjectKind string

const (
	KindCommunity  ObjectKind = "community"
	KindCollection ObjectKind = "collection"
	KindItem       ObjectKind = "item"
)

// MetadataValue is a single metadata field value on a repository object.
type MetadataValue struct {
	Value     string `json:"value"`
	Language  string `json:"language,omitempty"`
	Authority string `json:"authority,omitempty"`
	Place     int    `json:"place"`
}

// RepoObject is a repository object: a community, collection, or item.
// Metadata is keyed by dotted field name (e.g. "dc.title").
type RepoObject struct {
	ID       string                     `json:"id"`
	Kind     ObjectKind                 `json:"kind"`
	Name     string                     `json:"name"`
	Handle   string                     `json:"handle,omitempty"`
	Metadata map[string][]MetadataValue `json:"metadata,omitempty"`
}

// FirstMetadata returns the first value for a metadata field, or empty string.
func (o *RepoObject) FirstMetadata(field string) string {
	vals := o.Metadata[field]
	if len(vals) == 0 {
		return ""
	}
	return vals[0].Value
}

// Item is a repository item as shown in browse listings.
type Item struct {
	ID           string                     `json:"id"`
	Name         string                     `json:"name"`
	Handle       string                     `json:"handle,omitempty"`
	CollectionID string                     `json:"collection_id,omitempty"`
	Metadata     map[string][]MetadataValue `json:"metadata,omitempty"`
	LastModified string                     `json:"last_modified,omitempty"`
}

// BrowseEntry is a grouped metadata value (e.g. one author name) users can
// drill into to see the items carrying that value.
type BrowseEntry struct {
	Value     string `json:"value"`
	Authority string `json:"authority,omitempty"`
	Language  string `json:"language,omitempty"`
	Count     int64  `json:"count"`
	BrowseID  string `json:"browse_id"`
}
