package mongodb

import (
	"testing"
	"time"

	"adoptme-api/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPetDoc_DecodesBirthDateAsDateOrString(t *testing.T) {
	want := time.Date(2019, 3, 4, 12, 0, 0, 0, time.UTC)

	cases := map[string]any{
		"bson date":  primitive.NewDateTimeFromTime(want),
		"iso string": "2019-03-04T12:00:00.000Z",
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			raw, err := bson.Marshal(bson.M{
				"_id":       primitive.NewObjectID(),
				"name":      "Firulais",
				"species":   "dog",
				"birthDate": value,
			})
			require.NoError(t, err)

			var d petDoc
			require.NoError(t, bson.Unmarshal(raw, &d))

			p := d.toDomain()
			require.NotNil(t, p.BirthDate)
			assert.True(t, want.Equal(*p.BirthDate), "got %s", p.BirthDate)
		})
	}
}

func TestPetDoc_MissingOrNullBirthDate(t *testing.T) {
	for _, doc := range []bson.M{
		{"_id": primitive.NewObjectID(), "name": "Michi", "species": "cat"},
		{"_id": primitive.NewObjectID(), "name": "Michi", "species": "cat", "birthDate": nil},
	} {
		raw, err := bson.Marshal(doc)
		require.NoError(t, err)

		var d petDoc
		require.NoError(t, bson.Unmarshal(raw, &d))
		assert.Nil(t, d.toDomain().BirthDate)
	}
}

func TestPetDoc_WritesBirthDateAsBSONDate(t *testing.T) {
	bd := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)
	d, err := fromPet(petFixture(bd))
	require.NoError(t, err)

	raw, err := bson.Marshal(d)
	require.NoError(t, err)

	v := bson.Raw(raw).Lookup("birthDate")
	assert.Equal(t, bson.TypeDateTime, v.Type)
	assert.True(t, bd.Equal(v.Time()))
}

func petFixture(bd time.Time) pets.Pet {
	return pets.Pet{ID: primitive.NewObjectID().Hex(), Name: "Milo", Species: "dog", BirthDate: &bd}
}
