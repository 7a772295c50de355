package pets

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"adoptme-api/internal/platform/objectid"
	"adoptme-api/internal/platform/storeerr"
	"adoptme-api/internal/platform/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID  map[string]Pet
	calls int
	fail  error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	r.calls++
	if r.fail != nil {
		return nil, r.fail
	}
	out := make([]Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	r.calls++
	if r.fail != nil {
		return Pet{}, r.fail
	}
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, storeerr.ErrNotFound
	}
	return p, nil
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	r.calls++
	if r.fail != nil {
		return r.fail
	}
	if _, ok := r.byID[p.ID]; ok {
		return storeerr.ErrDuplicate
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(ctx context.Context, id string, patch Patch) (Pet, error) {
	r.calls++
	if r.fail != nil {
		return Pet{}, r.fail
	}
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, storeerr.ErrNotFound
	}
	p = patch.Apply(p)
	r.byID[id] = p
	return p, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) (Pet, error) {
	r.calls++
	if r.fail != nil {
		return Pet{}, r.fail
	}
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, storeerr.ErrNotFound
	}
	delete(r.byID, id)
	return p, nil
}

// -------------------------
// Tests
// -------------------------

func strp(s string) *string { return &s }

func TestService_Create_ParsesBirthDate(t *testing.T) {
	svc := NewService(newTestRepo())

	p, err := svc.Create(context.Background(), CreateInput{
		Name:      strp(" Milo "),
		Species:   strp("dog"),
		BirthDate: strp("2020-05-01"),
	})
	require.NoError(t, err)

	assert.True(t, objectid.IsValid(p.ID))
	assert.Equal(t, "Milo", p.Name)
	assert.False(t, p.Adopted)
	require.NotNil(t, p.BirthDate)
	assert.Equal(t, time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC), *p.BirthDate)
}

func TestService_Create_Validation(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateInput{Name: strp("Milo")})
	ve, ok := validation.AsError(err)
	require.True(t, ok)
	assert.Equal(t, validation.KindMissingField, ve.Kind)
	assert.Equal(t, []string{"species"}, ve.Fields)

	_, err = svc.Create(context.Background(), CreateInput{
		Name:      strp("Milo"),
		Species:   strp("dog"),
		BirthDate: strp("ayer"),
		Owner:     strp("nadie"),
	})
	ve, ok = validation.AsError(err)
	require.True(t, ok)
	assert.Equal(t, validation.KindConstraintViolation, ve.Kind)
	assert.Equal(t, []string{"birthDate", "owner"}, ve.Fields)

	assert.Zero(t, repo.calls)
}

func TestService_Update_IsPartial(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateInput{Name: strp("Milo"), Species: strp("cat")})
	require.NoError(t, err)

	adopted := true
	owner := objectid.New()
	got, err := svc.Update(ctx, p.ID, UpdateInput{Adopted: &adopted, Owner: &owner})
	require.NoError(t, err)

	assert.True(t, got.Adopted)
	assert.Equal(t, owner, got.Owner)
	assert.Equal(t, "cat", got.Species)
	assert.Equal(t, "Milo", got.Name)
}

func TestService_InvalidID(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, "x")
	assert.ErrorIs(t, err, ErrInvalidID)
	_, err = svc.Update(ctx, "x", UpdateInput{})
	assert.ErrorIs(t, err, ErrInvalidID)
	_, err = svc.Delete(ctx, "x")
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Zero(t, repo.calls)
}

func TestService_Import(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	items := []Pet{
		{ID: objectid.New(), Name: "A", Species: "dog"},
		{ID: objectid.New(), Name: "B", Species: "cat"},
	}
	n, err := svc.Import(context.Background(), items)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = svc.Import(context.Background(), []Pet{{ID: objectid.New(), Name: "C", Species: "fish"}, items[0]})
	assert.Equal(t, 1, n)
	assert.True(t, errors.Is(err, storeerr.ErrDuplicate))
}

func TestService_CanonicalIDsAndOwner(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	owner := objectid.New()
	p, err := svc.Create(ctx, CreateInput{Name: strp("Milo"), Species: strp("dog"), Owner: strp(strings.ToUpper(owner))})
	require.NoError(t, err)
	assert.Equal(t, owner, p.Owner)

	got, err := svc.GetByID(ctx, strings.ToUpper(p.ID))
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = svc.GetByID(ctx, " "+p.ID)
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestService_Update_ClearsOwner(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateInput{Name: strp("Milo"), Species: strp("dog"), Owner: strp(objectid.New())})
	require.NoError(t, err)
	require.NotEmpty(t, p.Owner)

	got, err := svc.Update(ctx, p.ID, UpdateInput{Owner: strp("")})
	require.NoError(t, err)
	assert.Empty(t, got.Owner)
	assert.Equal(t, "Milo", got.Name)

	_, err = svc.Update(ctx, p.ID, UpdateInput{Owner: strp("nope")})
	ve, ok := validation.AsError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"owner"}, ve.Fields)
}
