package initiative

import "context"

// Service is the initiative business logic contract.
type Service interface {
	List(ctx context.Context) ([]*Initiative, error)
	Get(ctx context.Context, idOrSlug string) (*Initiative, error)
	Create(ctx context.Context, req *CreateRequest) (*Initiative, error)
	Update(ctx context.Context, idOrSlug string, req *UpdateRequest) (*Initiative, error)
	Delete(ctx context.Context, idOrSlug string) error
}
