// Package validation envuelve go-playground/validator con los tags que usan los modelos
// y traduce sus errores a *Error (campo faltante vs restricción violada).
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"adoptme-api/internal/platform/objectid"

	"github.com/go-playground/validator/v10"
)

type Kind string

const (
	KindMissingField        Kind = "missing_field"
	KindConstraintViolation Kind = "constraint_violation"
)

// Error describe por qué un documento no pasa el esquema.
// Si hay campos faltantes gana KindMissingField.
type Error struct {
	Kind   Kind
	Fields []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Kind, strings.Join(e.Fields, ", "))
}

func Missing(fields ...string) *Error {
	return &Error{Kind: KindMissingField, Fields: fields}
}

func Constraint(fields ...string) *Error {
	return &Error{Kind: KindConstraintViolation, Fields: fields}
}

// AsError es errors.As para *Error.
func AsError(err error) (*Error, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Nombres de campo según el tag json (first_name, no FirstName).
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return objectid.IsValid(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})

	return v
}

// ParseDate acepta RFC3339 (con o sin fracción) o fecha sola YYYY-MM-DD (UTC).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

// Struct valida s y devuelve nil o *Error.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var missing, invalid []string
	for _, fe := range verrs {
		field := fieldPath(fe)
		if fe.Tag() == "required" {
			missing = append(missing, field)
		} else {
			invalid = append(invalid, field)
		}
	}

	if len(missing) > 0 {
		return Missing(uniqueSorted(missing)...)
	}
	return Constraint(uniqueSorted(invalid)...)
}

// fieldPath quita el nombre del struct raíz: "createUserRequest.pets[0]" -> "pets[0]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func uniqueSorted(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
