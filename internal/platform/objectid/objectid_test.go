package objectid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("507f1f77bcf86cd799439011"))
	assert.True(t, IsValid(New()))

	for _, bad := range []string{"", "invalid-id-format", "507f1f77bcf86cd79943901", "507f1f77bcf86cd79943901z", "123456789012"} {
		assert.False(t, IsValid(bad), "expected %q to be invalid", bad)
	}
}

func TestNew_Unique(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		id := New()
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestAllValid(t *testing.T) {
	assert.True(t, AllValid(nil))
	assert.True(t, AllValid([]string{New(), New()}))
	assert.False(t, AllValid([]string{New(), "nope"}))
}

func TestIsValid_RejectsPadding(t *testing.T) {
	id := New()
	assert.False(t, IsValid(" "+id))
	assert.False(t, IsValid(id+"\n"))
}

func TestNormalize(t *testing.T) {
	got, err := Normalize("507F1F77BCF86CD799439011")
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", got)

	_, err = Normalize(" 507f1f77bcf86cd799439011")
	assert.Error(t, err)

	all, err := NormalizeAll([]string{"507F1F77BCF86CD799439011", "507f1f77bcf86cd799439012"})
	require.NoError(t, err)
	assert.Equal(t, []string{"507f1f77bcf86cd799439011", "507f1f77bcf86cd799439012"}, all)

	all, err = NormalizeAll(nil)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	_, err = NormalizeAll([]string{"nope"})
	assert.Error(t, err)
}
