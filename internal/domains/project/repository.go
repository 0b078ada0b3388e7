package project

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrSlugExists signals a unique-index collision on create. The service
// treats it as retryable exactly once.
var ErrSlugExists = errors.New("project slug already exists")

// Repository is the project data access contract.
type Repository interface {
	List(ctx context.Context) ([]*Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Project, error)
	GetBySlug(ctx context.Context, slug string) (*Project, error)
	Create(ctx context.Context, p *Project) (*Project, error)
	Update(ctx context.Context, id uuid.UUID, p *Project) (*Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
