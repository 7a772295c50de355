package users

import (
	"context"
	"sync"

	"adoptme-api/internal/platform/storeerr"
)

// -------------------------
// Test repo (in-memory + contador de llamadas)
// -------------------------

type spyRepo struct {
	mu    sync.Mutex
	byID  map[string]User
	order []string
	calls int

	// si no es nil, todos los métodos devuelven este error
	fail error
}

func newSpyRepo() *spyRepo {
	return &spyRepo{byID: map[string]User{}}
}

func (r *spyRepo) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func (r *spyRepo) begin() error {
	r.calls++
	return r.fail
}

func (r *spyRepo) List(ctx context.Context) ([]User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(); err != nil {
		return nil, err
	}
	out := make([]User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *spyRepo) GetByID(ctx context.Context, id string) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(); err != nil {
		return User{}, err
	}
	u, ok := r.byID[id]
	if !ok {
		return User{}, storeerr.ErrNotFound
	}
	return u, nil
}

func (r *spyRepo) Create(ctx context.Context, u User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(); err != nil {
		return err
	}
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return storeerr.ErrDuplicate
		}
	}
	r.byID[u.ID] = u
	r.order = append(r.order, u.ID)
	return nil
}

func (r *spyRepo) Update(ctx context.Context, id string, p Patch) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(); err != nil {
		return User{}, err
	}
	u, ok := r.byID[id]
	if !ok {
		return User{}, storeerr.ErrNotFound
	}
	u = p.Apply(u)
	r.byID[id] = u
	return u, nil
}

func (r *spyRepo) Delete(ctx context.Context, id string) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(); err != nil {
		return User{}, err
	}
	u, ok := r.byID[id]
	if !ok {
		return User{}, storeerr.ErrNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return u, nil
}
