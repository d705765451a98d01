// Package browse implements browse coordination: reconciling route
// parameters, query parameters, and pagination/sort state into a single
// query descriptor, and holding the mutually exclusive entries/items page
// state while a browse is active.
package browse

import "strconv"

// Parameter keys recognized by the reconciler.
const (
	ParamBrowseID   = "id"
	ParamValue      = "value"
	ParamAuthority  = "authority"
	ParamStartsWith = "startsWith"
	ParamScope      = "scope"
)

// MergeParams flattens route and query parameters into one mapping. Query
// parameters are merged second, so they win on key collision.
func MergeParams(route, query map[string]string) map[string]string {
	merged := make(map[string]string, len(route)+len(query))
	for k, v := range route {
		merged[k] = v
	}
	for k, v := range query {
		merged[k] = v
	}
	return merged
}

// CoerceValue converts a parameter to its typed form: integer strings
// become int64 (year buckets and similar numeric prefixes), anything else
// passes through as a string, and the empty string means "no filter" (nil).
func CoerceValue(s string) any {
	if s == "" {
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return s
}
