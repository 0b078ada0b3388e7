package news

import "context"

// Service is the news business logic contract.
type Service interface {
	List(ctx context.Context) ([]*Item, error)
	Get(ctx context.Context, idOrSlug string) (*Item, error)
	Create(ctx context.Context, req *CreateRequest) (*Item, error)
	Update(ctx context.Context, idOrSlug string, req *UpdateRequest) (*Item, error)
	Delete(ctx context.Context, idOrSlug string) error
}
