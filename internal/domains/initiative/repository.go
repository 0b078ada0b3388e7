package initiative

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrSlugExists signals a unique-index collision on create.
var ErrSlugExists = errors.New("initiative slug already exists")

// Repository is the initiative data access contract.
type Repository interface {
	List(ctx context.Context) ([]*Initiative, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Initiative, error)
	GetBySlug(ctx context.Context, slug string) (*Initiative, error)
	Create(ctx context.Context, initiative *Initiative) (*Initiative, error)
	Update(ctx context.Context, id uuid.UUID, initiative *Initiative) (*Initiative, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
