package mocks

import (
	"testing"
	"time"

	"adoptme-api/internal/platform/objectid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Pets(t *testing.T) {
	g := NewGenerator(42)
	now := time.Now().UTC()

	items := g.Pets(5)
	require.Len(t, items, 5)

	seen := map[string]bool{}
	for _, p := range items {
		assert.True(t, objectid.IsValid(p.ID))
		assert.False(t, seen[p.ID], "id repetido %s", p.ID)
		seen[p.ID] = true

		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Species)
		assert.False(t, p.Adopted)
		assert.Empty(t, p.Owner)

		require.NotNil(t, p.BirthDate)
		assert.True(t, p.BirthDate.Before(now))
		assert.True(t, p.BirthDate.After(now.AddDate(-21, 0, 0)))
	}
}

func TestGenerator_Users(t *testing.T) {
	g := NewGenerator(7)

	items := g.Users(200)
	require.Len(t, items, 200)

	emails := map[string]bool{}
	ids := map[string]bool{}
	for _, u := range items {
		assert.True(t, objectid.IsValid(u.ID))
		assert.False(t, ids[u.ID])
		ids[u.ID] = true

		assert.False(t, emails[u.Email], "email repetido %s", u.Email)
		emails[u.Email] = true

		assert.NotEmpty(t, u.FirstName)
		assert.NotEmpty(t, u.LastName)
		assert.Equal(t, MockPassword, u.Password)
		assert.True(t, u.Role.Valid())
		assert.NotNil(t, u.Pets)
		assert.Empty(t, u.Pets)
		assert.GreaterOrEqual(t, u.Age, 18.0)
		assert.LessOrEqual(t, u.Age, 80.0)
	}
}

func TestGenerator_NonPositiveCount(t *testing.T) {
	g := NewGenerator(1)

	assert.Empty(t, g.Pets(0))
	assert.NotNil(t, g.Pets(-3))
	assert.Empty(t, g.Users(0))
}

func TestGenerator_SameSeedSameNames(t *testing.T) {
	a := NewGenerator(99).Pets(3)
	b := NewGenerator(99).Pets(3)

	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name)
		assert.Equal(t, a[i].Species, b[i].Species)
		assert.NotEqual(t, a[i].ID, b[i].ID)
	}
}

func TestGeneratePets(t *testing.T) {
	assert.Len(t, GeneratePets(3), 3)
	assert.Len(t, GenerateUsers(2), 2)
}
