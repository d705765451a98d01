package browse

import "github.com/atriumhq/atrium/internal/types"

// Mode selects which of the two fetch slots a snapshot activates.
type Mode string

const (
	// ModeEntries fetches the grouped entry list for a browse definition.
	ModeEntries Mode = "entries"
	// ModeItems fetches the items matching one entry value.
	ModeItems Mode = "items"
)

// Snapshot is one merged emission of the four coordination inputs. A
// snapshot fully supersedes the previous one; partial updates are never
// merged.
type Snapshot struct {
	RouteParams map[string]string
	QueryParams map[string]string
	Pagination  types.Pagination
	Sort        types.Sort
}

// Decision is the outcome of reconciling one snapshot: the query descriptor
// plus the active mode. Value and Authority are set only in items mode.
type Decision struct {
	Mode  Mode
	Query types.BrowseQuery

	// Value is the coerced filter value (string or int64).
	Value     any
	Authority string
}

// Reconcile merges a snapshot's parameters into one query descriptor and
// decides the active mode: items when the coerced filter value is
// non-empty, entries otherwise. A missing browse id falls back to
// defaultBrowseID.
func Reconcile(snap Snapshot, defaultBrowseID string) Decision {
	params := MergeParams(snap.RouteParams, snap.QueryParams)

	browseID := params[ParamBrowseID]
	if browseID == "" {
		browseID = defaultBrowseID
	}

	query := types.BrowseQuery{
		BrowseID:   browseID,
		Pagination: snap.Pagination,
		Sort:       snap.Sort,
		StartsWith: CoerceValue(params[ParamStartsWith]),
		Scope:      params[ParamScope],
	}

	if value := CoerceValue(params[ParamValue]); value != nil {
		return Decision{
			Mode:      ModeItems,
			Query:     query,
			Value:     value,
			Authority: params[ParamAuthority],
		}
	}

	return Decision{Mode: ModeEntries, Query: query}
}
