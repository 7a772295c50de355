package pets

import "context"

type Repository interface {
	List(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id string) (Pet, error)
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, id string, p Patch) (Pet, error)
	Delete(ctx context.Context, id string) (Pet, error)
}
