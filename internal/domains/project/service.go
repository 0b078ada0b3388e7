package project

import "context"

// Service is the project business logic contract. Records come back
// ordered by descending creation time; Get accepts an id or a slug.
type Service interface {
	List(ctx context.Context) ([]*Project, error)
	Get(ctx context.Context, idOrSlug string) (*Project, error)
	Create(ctx context.Context, in *Input) (*Project, error)
	Update(ctx context.Context, idOrSlug string, in *UpdateInput) (*Project, error)
	Delete(ctx context.Context, idOrSlug string) error
}
