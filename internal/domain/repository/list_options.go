// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "strings"

const (
	// DefaultLimit is applied when a list request does not specify one.
	DefaultLimit = 10
	// MaxLimit caps the page size of any list request.
	MaxLimit = 100
)

// SortOrder is the direction of a list sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListOptions carries pagination and sorting shared by all list queries.
// SortBy is validated against a per-repository column whitelist; unknown
// columns fall back to the repository's default sort key.
type ListOptions struct {
	Offset    int
	Limit     int
	SortBy    string
	SortOrder SortOrder
}

// Normalize clamps pagination to sane bounds and canonicalizes the order.
func (o ListOptions) Normalize() ListOptions {
	if o.Offset < 0 {
		o.Offset = 0
	}
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
	if !strings.EqualFold(string(o.SortOrder), string(SortDesc)) {
		o.SortOrder = SortAsc
	} else {
		o.SortOrder = SortDesc
	}

	return o
}

// SortColumn returns SortBy when it appears in allowed, otherwise fallback.
func (o ListOptions) SortColumn(allowed []string, fallback string) string {
	for _, col := range allowed {
		if strings.EqualFold(col, o.SortBy) {
			return col
		}
	}

	return fallback
}
