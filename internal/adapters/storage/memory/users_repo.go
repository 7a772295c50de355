package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"adoptme-api/internal/domain/users"
	"adoptme-api/internal/platform/storeerr"
)

// userRepo mantiene un índice por email para imitar el índice único del store real.
type userRepo struct {
	mu      sync.RWMutex
	byID    map[string]users.User
	byEmail map[string]string
	order   []string
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID:    make(map[string]users.User),
		byEmail: make(map[string]string),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.byID[u.ID]; exists {
		return storeerr.ErrDuplicate
	}
	if _, taken := r.byEmail[u.Email]; taken {
		return storeerr.ErrDuplicate
	}

	r.byID[u.ID] = cloneUser(u)
	r.byEmail[u.Email] = u.ID
	r.order = append(r.order, u.ID)
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, storeerr.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *userRepo) List(ctx context.Context) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]users.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneUser(r.byID[id]))
	}
	return out, nil
}

func (r *userRepo) Update(ctx context.Context, id string, p users.Patch) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[id]
	if !ok {
		return users.User{}, storeerr.ErrNotFound
	}

	next := p.Apply(current)
	if next.Email != current.Email {
		if owner, taken := r.byEmail[next.Email]; taken && owner != id {
			return users.User{}, storeerr.ErrDuplicate
		}
		delete(r.byEmail, current.Email)
		r.byEmail[next.Email] = id
	}

	r.byID[id] = next
	return cloneUser(next), nil
}

func (r *userRepo) Delete(ctx context.Context, id string) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, storeerr.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, u.Email)
	r.order = removeID(r.order, id)
	return u, nil
}

func cloneUser(u users.User) users.User {
	u.Pets = append([]string{}, u.Pets...)
	return u
}
