package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"adoptme-api/internal/platform/objectid"
	"adoptme-api/internal/platform/storeerr"
	"adoptme-api/internal/platform/validation"
)

var (
	ErrInvalidID      = errors.New("invalid object id")
	ErrNotFound       = storeerr.ErrNotFound
	ErrUnavailable    = storeerr.ErrUnavailable
	ErrDuplicateEmail = errors.New("email already registered")
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

// CreateInput es el body de POST /api/users.
// Punteros para distinguir "no enviado" de valor cero (age: 0 es válido).
type CreateInput struct {
	FirstName *string  `json:"first_name" validate:"required,notblank" example:"John"`
	LastName  *string  `json:"last_name" validate:"required,notblank" example:"Doe"`
	Email     *string  `json:"email" validate:"required,email" example:"john.doe@example.com"`
	Age       *float64 `json:"age" validate:"required,gte=0" example:"30"`
	Password  *string  `json:"password" validate:"required,notblank" example:"securePassword123"`
	Role      *Role    `json:"role" validate:"omitnil,oneof=user admin" enums:"user,admin" example:"user"`
	Pets      []string `json:"pets" validate:"omitempty,dive,objectid"`
}

// UpdateInput es el body de PUT /api/users/{userID}; solo se valida lo que viene.
type UpdateInput struct {
	FirstName *string   `json:"first_name" validate:"omitnil,notblank" example:"Jane"`
	LastName  *string   `json:"last_name" validate:"omitnil,notblank" example:"Smith"`
	Email     *string   `json:"email" validate:"omitnil,email" example:"jane.smith@example.com"`
	Age       *float64  `json:"age" validate:"omitnil,gte=0" example:"28"`
	Password  *string   `json:"password" validate:"omitnil,notblank"`
	Role      *Role     `json:"role" validate:"omitnil,oneof=user admin" enums:"user,admin"`
	Pets      *[]string `json:"pets" validate:"omitnil,dive,objectid"`
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	id, err := normalizeID(id)
	if err != nil {
		return User{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	if err := validation.Struct(in); err != nil {
		return User{}, err
	}

	u := User{
		ID:        s.newID(),
		FirstName: strings.TrimSpace(*in.FirstName),
		LastName:  strings.TrimSpace(*in.LastName),
		Email:     strings.TrimSpace(*in.Email),
		Age:       *in.Age,
		Password:  *in.Password,
		Role:      RoleUser,
		Pets:      []string{},
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if len(in.Pets) > 0 {
		refs, err := objectid.NormalizeAll(in.Pets)
		if err != nil {
			return User{}, validation.Constraint("pets")
		}
		u.Pets = refs
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, translateWriteErr(err)
	}
	return u, nil
}

// Update aplica solo los campos enviados. Body vacío => devuelve el documento sin cambios.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (User, error) {
	id, err := normalizeID(id)
	if err != nil {
		return User{}, err
	}
	if err := validation.Struct(in); err != nil {
		return User{}, err
	}

	p := Patch{
		FirstName: trimmed(in.FirstName),
		LastName:  trimmed(in.LastName),
		Email:     trimmed(in.Email),
		Age:       in.Age,
		Password:  in.Password,
		Role:      in.Role,
	}
	if in.Pets != nil {
		refs, err := objectid.NormalizeAll(*in.Pets)
		if err != nil {
			return User{}, validation.Constraint("pets")
		}
		p.Pets = &refs
	}
	if p.IsEmpty() {
		return s.repo.GetByID(ctx, id)
	}

	u, err := s.repo.Update(ctx, id, p)
	if err != nil {
		return User{}, translateWriteErr(err)
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id string) (User, error) {
	id, err := normalizeID(id)
	if err != nil {
		return User{}, err
	}
	return s.repo.Delete(ctx, id)
}

// normalizeID deja el id en la forma canónica que usan todos los backends.
func normalizeID(id string) (string, error) {
	n, err := objectid.Normalize(id)
	if err != nil {
		return "", ErrInvalidID
	}
	return n, nil
}

func translateWriteErr(err error) error {
	if errors.Is(err, storeerr.ErrDuplicate) {
		return fmt.Errorf("%w: %w", ErrDuplicateEmail, err)
	}
	return err
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// Import guarda usuarios ya armados (con ID), p.ej. los del generador de mocks.
// Se detiene en el primer error y devuelve cuántos quedaron guardados.
func (s *Service) Import(ctx context.Context, items []User) (int, error) {
	for i, u := range items {
		id, err := normalizeID(u.ID)
		if err != nil {
			return i, fmt.Errorf("user %d: %w", i, err)
		}
		u.ID = id
		if !u.Role.Valid() {
			return i, fmt.Errorf("user %d: %w", i, validation.Constraint("role"))
		}
		if u.Pets, err = objectid.NormalizeAll(u.Pets); err != nil {
			return i, fmt.Errorf("user %d: %w", i, validation.Constraint("pets"))
		}
		if err := s.repo.Create(ctx, u); err != nil {
			return i, fmt.Errorf("user %d: %w", i, translateWriteErr(err))
		}
	}
	return len(items), nil
}
