package validation

import (
	"testing"

	"adoptme-api/internal/platform/objectid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  *string  `json:"name" validate:"required,notblank"`
	Email *string  `json:"email" validate:"required,email"`
	Role  *string  `json:"role" validate:"omitempty,oneof=user admin"`
	Refs  []string `json:"refs" validate:"omitempty,dive,objectid"`
}

func ptr(s string) *string { return &s }

func TestStruct_OK(t *testing.T) {
	err := Struct(sample{Name: ptr("Milo"), Email: ptr("a@b.co"), Refs: []string{objectid.New()}})
	require.NoError(t, err)
}

func TestStruct_MissingWins(t *testing.T) {
	err := Struct(sample{Role: ptr("root")})
	ve, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindMissingField, ve.Kind)
	assert.Equal(t, []string{"email", "name"}, ve.Fields)
}

func TestStruct_Constraint(t *testing.T) {
	err := Struct(sample{Name: ptr("  "), Email: ptr("not-an-email"), Role: ptr("root"), Refs: []string{"bad"}})
	ve, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindConstraintViolation, ve.Kind)
	assert.Equal(t, []string{"email", "name", "refs[0]", "role"}, ve.Fields)
	assert.Contains(t, ve.Error(), "constraint_violation")
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2020-02-29")
	require.NoError(t, err)
	assert.Equal(t, 2020, d.Year())

	d, err = ParseDate("2019-05-01T10:30:00.123-03:00")
	require.NoError(t, err)
	assert.Equal(t, 13, d.Hour())

	_, err = ParseDate("01/05/2019")
	require.Error(t, err)
}
