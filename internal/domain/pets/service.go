package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"adoptme-api/internal/platform/objectid"
	"adoptme-api/internal/platform/storeerr"
	"adoptme-api/internal/platform/validation"
)

var (
	ErrInvalidID   = errors.New("invalid object id")
	ErrNotFound    = storeerr.ErrNotFound
	ErrUnavailable = storeerr.ErrUnavailable
)

type Service struct {
	repo  Repository
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		newID: objectid.New,
	}
}

type CreateInput struct {
	Name      *string `json:"name" validate:"required,notblank" example:"Milo"`
	Species   *string `json:"species" validate:"required,notblank" example:"dog"`
	BirthDate *string `json:"birthDate" validate:"omitnil,isodate" example:"2020-05-01T00:00:00Z"`
	Adopted   *bool   `json:"adopted" example:"false"`
	Owner     *string `json:"owner" validate:"omitnil,objectid" example:"507f1f77bcf86cd799439011"`
}

type UpdateInput struct {
	Name      *string `json:"name" validate:"omitnil,notblank"`
	Species   *string `json:"species" validate:"omitnil,notblank"`
	BirthDate *string `json:"birthDate" validate:"omitnil,isodate"`
	Adopted   *bool   `json:"adopted"`
	// "" quita el dueño.
	Owner *string `json:"owner" validate:"omitempty,objectid"`
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id, err := normalizeID(id)
	if err != nil {
		return Pet{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if err := validation.Struct(in); err != nil {
		return Pet{}, err
	}

	p := Pet{
		ID:        s.newID(),
		Name:      strings.TrimSpace(*in.Name),
		Species:   strings.TrimSpace(*in.Species),
		BirthDate: parseDate(in.BirthDate),
	}
	if in.Adopted != nil {
		p.Adopted = *in.Adopted
	}
	if in.Owner != nil {
		owner, err := objectid.Normalize(*in.Owner)
		if err != nil {
			return Pet{}, validation.Constraint("owner")
		}
		p.Owner = owner
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Import guarda registros ya armados (con ID), p.ej. los del generador de mocks.
// Se detiene en el primer error y devuelve cuántos quedaron guardados.
func (s *Service) Import(ctx context.Context, items []Pet) (int, error) {
	for i, p := range items {
		id, err := normalizeID(p.ID)
		if err != nil {
			return i, fmt.Errorf("pet %d: %w", i, err)
		}
		p.ID = id
		if p.Owner != "" {
			if p.Owner, err = objectid.Normalize(p.Owner); err != nil {
				return i, fmt.Errorf("pet %d: %w", i, validation.Constraint("owner"))
			}
		}
		if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Species) == "" {
			return i, fmt.Errorf("pet %d: %w", i, validation.Missing("name", "species"))
		}
		if err := s.repo.Create(ctx, p); err != nil {
			return i, fmt.Errorf("pet %d: %w", i, err)
		}
	}
	return len(items), nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	id, err := normalizeID(id)
	if err != nil {
		return Pet{}, err
	}
	if err := validation.Struct(in); err != nil {
		return Pet{}, err
	}

	p := Patch{
		Name:      trimmed(in.Name),
		Species:   trimmed(in.Species),
		BirthDate: parseDate(in.BirthDate),
		Adopted:   in.Adopted,
	}
	if in.Owner != nil {
		owner := ""
		if *in.Owner != "" {
			if owner, err = objectid.Normalize(*in.Owner); err != nil {
				return Pet{}, validation.Constraint("owner")
			}
		}
		p.Owner = &owner
	}
	if p.IsEmpty() {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.Update(ctx, id, p)
}

func (s *Service) Delete(ctx context.Context, id string) (Pet, error) {
	id, err := normalizeID(id)
	if err != nil {
		return Pet{}, err
	}
	return s.repo.Delete(ctx, id)
}

func normalizeID(id string) (string, error) {
	n, err := objectid.Normalize(id)
	if err != nil {
		return "", ErrInvalidID
	}
	return n, nil
}

// parseDate asume que el valor ya pasó por validation (isodate).
func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := validation.ParseDate(*s)
	if err != nil {
		return nil
	}
	return &t
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
