package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"adoptme-api/internal/domain/pets"
	"adoptme-api/internal/platform/storeerr"
)

type petRepo struct {
	mu    sync.RWMutex
	byID  map[string]pets.Pet
	order []string // orden de inserción, hace de "orden natural"
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[string]pets.Pet),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return storeerr.ErrDuplicate
	}
	r.byID[p.ID] = clonePet(p)
	r.order = append(r.order, p.ID)
	return nil
}

func (r *petRepo) Update(ctx context.Context, id string, patch pets.Patch) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, storeerr.ErrNotFound
	}
	p = patch.Apply(p)
	r.byID[id] = p
	return clonePet(p), nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, storeerr.ErrNotFound
	}
	return clonePet(p), nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clonePet(r.byID[id]))
	}
	return out, nil
}

func (r *petRepo) Delete(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, storeerr.ErrNotFound
	}
	delete(r.byID, id)
	r.order = removeID(r.order, id)
	return p, nil
}

func clonePet(p pets.Pet) pets.Pet {
	if p.BirthDate != nil {
		t := *p.BirthDate
		p.BirthDate = &t
	}
	return p
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
