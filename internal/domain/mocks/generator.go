// Package mocks genera datos sintéticos (mascotas y usuarios) para pruebas y seeding.
// El generador no persiste nada; guardar es responsabilidad de quien llama.
package mocks

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"adoptme-api/internal/domain/pets"
	"adoptme-api/internal/domain/users"
	"adoptme-api/internal/platform/objectid"

	"github.com/brianvoe/gofakeit/v7"
)

// MockPassword es la contraseña de todos los usuarios generados.
const MockPassword = "coder123"

// MaxCount acota cuántos registros se generan por request.
const MaxCount = 1000

type Generator struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
	now   func() time.Time
	newID func() string
}

// NewGenerator con seed 0 usa una semilla aleatoria.
func NewGenerator(seed uint64) *Generator {
	return &Generator{
		faker: gofakeit.New(seed),
		now:   time.Now,
		newID: objectid.New,
	}
}

// GeneratePets devuelve n mascotas con un generador nuevo.
func GeneratePets(n int) []pets.Pet {
	return NewGenerator(0).Pets(n)
}

// GenerateUsers devuelve n usuarios con un generador nuevo.
func GenerateUsers(n int) []users.User {
	return NewGenerator(0).Users(n)
}

// Pets genera n mascotas independientes con ID nuevo y fecha de nacimiento en el pasado.
func (g *Generator) Pets(n int) []pets.Pet {
	if n <= 0 {
		return []pets.Pet{}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now().UTC()
	oldest := now.AddDate(-20, 0, 0)
	latest := now.Add(-24 * time.Hour)

	out := make([]pets.Pet, 0, n)
	for i := 0; i < n; i++ {
		bd := g.faker.DateRange(oldest, latest).UTC().Truncate(time.Millisecond)
		out = append(out, pets.Pet{
			ID:        g.newID(),
			Name:      nonEmpty(g.faker.PetName(), "Firulais"),
			Species:   nonEmpty(g.faker.Animal(), "dog"),
			BirthDate: &bd,
		})
	}
	return out
}

// Users genera n usuarios con email único dentro del lote, pets vacío y rol al azar.
func (g *Generator) Users(n int) []users.User {
	if n <= 0 {
		return []users.User{}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	seen := make(map[string]struct{}, n)
	out := make([]users.User, 0, n)
	for i := 0; i < n; i++ {
		first := nonEmpty(g.faker.FirstName(), "Juan")
		last := nonEmpty(g.faker.LastName(), "Pérez")

		email := strings.ToLower(g.faker.Email())
		if _, dup := seen[email]; dup || email == "" {
			email = fmt.Sprintf("%s.%s.%d@example.com", strings.ToLower(first), strings.ToLower(last), i)
		}
		seen[email] = struct{}{}

		role := users.RoleUser
		if g.faker.Bool() {
			role = users.RoleAdmin
		}

		out = append(out, users.User{
			ID:        g.newID(),
			FirstName: first,
			LastName:  last,
			Email:     email,
			Age:       float64(g.faker.Number(18, 80)),
			Password:  MockPassword,
			Role:      role,
			Pets:      []string{},
		})
	}
	return out
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
