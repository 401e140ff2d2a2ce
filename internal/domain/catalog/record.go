// Package catalog holds the lookup domains (provinces, cities, hashtags,
// activities, categories, reactions). Unlike the plan aggregate these are
// flat reference records with identical CRUD semantics, so they share one
// generic repository instead of six hand-written ones.
package catalog

import (
	"context"

	"tripwise/internal/shared/query"
)

// Record is the constraint every lookup entity satisfies. PT is the pointer
// type so the generic repository can instantiate and mutate records.
type Record[T any] interface {
	*T
	GetID() uint
	SetID(id uint)
	EntityName() string
	// Normalize fills derived columns (slugs) before persistence.
	Normalize()
	// SearchColumn names the column List matches the search query against.
	SearchColumn() string
	// SearchTerm maps a raw search query to the LIKE pattern for SearchColumn.
	SearchTerm(q string) string
}

// ListFilter carries pagination and an optional search query.
type ListFilter struct {
	query.PageFilter
	Search string
}

// Repository is the generic persistence port shared by all lookup entities.
type Repository[T any, PT Record[T]] interface {
	Create(ctx context.Context, record PT) error
	Update(ctx context.Context, record PT) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	GetByID(ctx context.Context, id uint) (PT, error)
	List(ctx context.Context, filter ListFilter) ([]PT, int64, error)
}

// HashtagRepository adds the upsert the hashtag flow needs on top of the
// generic operations.
type HashtagRepository interface {
	Repository[Hashtag, *Hashtag]
	// CreateIfNotExists inserts the hashtag or returns the existing row
	// with the same slug.
	CreateIfNotExists(ctx context.Context, record *Hashtag) (*Hashtag, error)
}
