package team

import "context"

// Service is the team member business logic contract.
type Service interface {
	List(ctx context.Context) ([]*Member, error)
	Get(ctx context.Context, id string) (*Member, error)
	Create(ctx context.Context, req *CreateRequest) (*Member, error)
	Update(ctx context.Context, id string, req *UpdateRequest) (*Member, error)
	Delete(ctx context.Context, id string) error
}
