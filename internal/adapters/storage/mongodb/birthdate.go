package mongodb

import (
	"fmt"
	"time"

	"adoptme-api/internal/platform/validation"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// birthDate se guarda como BSON date, pero también se lee si quedó como string ISO-8601
// (así lo siembran los scripts de mocks en JS: faker...toISOString()).
type birthDate struct {
	time.Time
}

func (b birthDate) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(primitive.NewDateTimeFromTime(b.Time))
}

func (b *birthDate) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.DateTime:
		b.Time = rv.Time().UTC()
		return nil
	case bsontype.String:
		s := rv.StringValue()
		if s == "" {
			b.Time = time.Time{}
			return nil
		}
		parsed, err := validation.ParseDate(s)
		if err != nil {
			return fmt.Errorf("birthDate: %w", err)
		}
		b.Time = parsed
		return nil
	case bsontype.Null, bsontype.Undefined:
		b.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("birthDate: unsupported bson type %s", t)
	}
}
