// Package types provides shared display models used across multiple packages.
// This package has no dependencies on other atrium packages to avoid import cycles.
package types

// SortDirection indicates the direction of a sorted listing.
type SortDirection string

const (
	// SortAscending sorts results in ascending order.
	SortAscending SortDirection = "ASC"
	// SortDescending sorts results in descending order.
	SortDescending SortDirection = "DESC"
)

// ParseSortDirection converts a string to a SortDirection.
// Returns SortAscending if the string is not recognized.
func ParseSortDirection(s string) SortDirection {
	switch s {
	case "DESC", "desc":
		return SortDescending
	case "ASC", "asc":
		return SortAscending
	default:
		return SortAscending
	}
}

// Sort describes the ordering applied to a listing.
type Sort struct {
	Field     string        `json:"field"`
	Direction SortDirection `json:"direction"`
}

// Pagination describes one page window of a listing.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Page is one page of results together with the request that produced it.
// The echoed query lets callers ask for the adjacent page without
// reconstructing the original request.
type Page[T any] struct {
	Results      []T   `json:"results"`
	Page         int   `json:"page"`
	PageSize     int   `json:"page_size"`
	TotalPages   int   `json:"total_pages"`
	TotalResults int64 `json:"total_results"`
	Sort         Sort  `json:"sort"`
}

// HasNext reports whether a page after this one exists.
func (p Page[T]) HasNext() bool {
	return p.Page+1 < p.TotalPages
}

// HasPrev reports whether a page before this one exists.
func (p Page[T]) HasPrev() bool {
	return p.Page > 0
}
