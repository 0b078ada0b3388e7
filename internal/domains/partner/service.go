package partner

import "context"

// Service is the partner business logic contract.
type Service interface {
	List(ctx context.Context) ([]*Partner, error)
	Get(ctx context.Context, idOrSlug string) (*Partner, error)
	Create(ctx context.Context, req *CreateRequest) (*Partner, error)
	Update(ctx context.Context, idOrSlug string, req *UpdateRequest) (*Partner, error)
	Delete(ctx context.Context, idOrSlug string) error
}
