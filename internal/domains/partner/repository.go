package partner

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrSlugExists signals a unique-index collision on create.
var ErrSlugExists = errors.New("partner slug already exists")

// Repository is the partner data access contract.
type Repository interface {
	List(ctx context.Context) ([]*Partner, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Partner, error)
	GetBySlug(ctx context.Context, slug string) (*Partner, error)
	Create(ctx context.Context, partner *Partner) (*Partner, error)
	Update(ctx context.Context, id uuid.UUID, partner *Partner) (*Partner, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
