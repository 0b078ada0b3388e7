package news

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrSlugExists signals a unique-index collision on create.
var ErrSlugExists = errors.New("news slug already exists")

// Repository is the news data access contract. List order is
// descending publish time, not creation time.
type Repository interface {
	List(ctx context.Context) ([]*Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Item, error)
	GetBySlug(ctx context.Context, slug string) (*Item, error)
	Create(ctx context.Context, item *Item) (*Item, error)
	Update(ctx context.Context, id uuid.UUID, item *Item) (*Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
