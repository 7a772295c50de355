package users

import "context"

// Repository: cada método es una sola operación contra el store.
// Errores esperados: storeerr.ErrNotFound, storeerr.ErrDuplicate (email), storeerr.ErrUnavailable.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, u User) error
	// Update aplica el patch y devuelve el documento ya actualizado.
	Update(ctx context.Context, id string, p Patch) (User, error)
	// Delete borra y devuelve el documento como estaba.
	Delete(ctx context.Context, id string) (User, error)
}
