package repository

import (
	"retain-api/internal/model"
	"retain-api/pkg/paginator"
)

// Filter contains filtering options for decision queries.
type Filter struct {
	IDs        []string
	CustomerID string
	RiskLevels []string
	Labeled    *bool
}

// CreateOptions contains options for recording a decision.
type CreateOptions struct {
	Decision model.Decision
}

// UpdateOptions contains options for updating a decision. The whole record
// is written back; callers mutate a loaded decision.
type UpdateOptions struct {
	Decision model.Decision
}

// ListOptions contains options for unpaginated decision listing.
type ListOptions struct {
	Filter Filter
}

// GetOptions contains options for paginated decision listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}
