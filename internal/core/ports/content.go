package ports

import (
	"context"
	"time"
)

// ListQuery carries sort/filter/limit parameters for listing content.
// SortField names the stored (bson) field to order by.
type ListQuery struct {
	SortField string
	Ascending bool
	Limit     int64      // 0 = no limit
	NotBefore *time.Time // optional: only records whose date >= NotBefore
}

// ContentPolicy describes how one content kind is listed: the admin
// dashboard ordering and the public home-page view (sorted, limited,
// optionally filtered to the future). One generic CRUD engine is
// instantiated per kind with its policy.
type ContentPolicy struct {
	Kind       string // collection name, also used in logs and metrics
	AdminList  ListQuery
	PublicList func(now time.Time) ListQuery
}

// ContentRepository defines persistence for one content collection.
// Implementations must reject malformed ids with domain.ErrInvalidID before
// touching the store, and report zero-match update/delete as
// domain.ErrNotFound.
type ContentRepository[T any] interface {
	Insert(ctx context.Context, doc *T) (string, error)
	FindByID(ctx context.Context, id string) (*T, error)
	List(ctx context.Context, q ListQuery) ([]*T, error)
	Replace(ctx context.Context, id string, doc *T) error
	Delete(ctx context.Context, id string) error
}

// ContentService defines the use-case operations for one content kind.
type ContentService[T any] interface {
	List(ctx context.Context) ([]*T, error)
	PublicList(ctx context.Context) ([]*T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, doc *T) (*T, error)
	Update(ctx context.Context, id string, doc *T) (*T, error)
	Delete(ctx context.Context, id string) error
}
