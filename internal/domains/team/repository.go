package team

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the team member data access contract.
type Repository interface {
	List(ctx context.Context) ([]*Member, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Member, error)
	Create(ctx context.Context, m *Member) (*Member, error)
	Update(ctx context.Context, id uuid.UUID, m *Member) (*Member, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
