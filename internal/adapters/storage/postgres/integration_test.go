//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"adoptme-api/internal/domain/pets"
	"adoptme-api/internal/domain/users"
	"adoptme-api/internal/platform/objectid"
	"adoptme-api/internal/platform/storeerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "adoptme",
				"POSTGRES_PASSWORD": "adoptme",
				"POSTGRES_DB":       "adoptme",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	}
	c, err := testcontainers.GenericContainer(ctx, req)
	testcontainers.CleanupContainer(t, c)
	require.NoError(t, err)

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://adoptme:adoptme@%s:%s/adoptme?sslmode=disable", host, port.Port())
	db, err := Open(ctx, dsn, 10*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(ctx, db))
	return db
}

func TestPostgres_UsersAndPets(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()

	ur := NewUsersRepo(db)
	pr := NewPetsRepo(db)

	a := users.User{ID: objectid.New(), FirstName: "Ana", LastName: "García", Email: "ana@example.com", Age: 30, Password: "x", Role: users.RoleUser, Pets: []string{}}
	b := users.User{ID: objectid.New(), FirstName: "Beto", LastName: "Ruiz", Email: "beto@example.com", Age: 40, Password: "y", Role: users.RoleAdmin, Pets: []string{objectid.New()}}
	require.NoError(t, ur.Create(ctx, a))
	require.NoError(t, ur.Create(ctx, b))

	list, err := ur.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, b.Pets, list[1].Pets)

	taken := a.Email
	_, err = ur.Update(ctx, b.ID, users.Patch{Email: &taken})
	assert.ErrorIs(t, err, storeerr.ErrDuplicate)

	_, err = ur.GetByID(ctx, objectid.New())
	assert.ErrorIs(t, err, storeerr.ErrNotFound)

	petID := objectid.New()
	require.NoError(t, pr.Create(ctx, pets.Pet{ID: petID, Name: "Michi", Species: "cat"}))

	name := "Michi II"
	p, err := pr.Update(ctx, petID, pets.Patch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Michi II", p.Name)
	assert.Nil(t, p.BirthDate)
	assert.Empty(t, p.Owner)

	deleted, err := pr.Delete(ctx, petID)
	require.NoError(t, err)
	assert.Equal(t, "Michi II", deleted.Name)

	_, err = pr.Delete(ctx, petID)
	assert.ErrorIs(t, err, storeerr.ErrNotFound)
}
