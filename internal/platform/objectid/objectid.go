// Package objectid valida y genera identificadores con formato ObjectId de MongoDB
// (24 caracteres hexadecimales). Todos los backends usan este formato.
package objectid

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsValid chequea solo el formato; no dice nada sobre existencia.
// No recorta espacios: " 507f..." no es un ObjectId.
func IsValid(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}

// New genera un ObjectId nuevo en hex.
func New() string {
	return primitive.NewObjectID().Hex()
}

// Parse devuelve el ObjectId o primitive.ErrInvalidHex.
func Parse(s string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(s)
}

// Normalize devuelve la forma canónica (hex en minúsculas) que guardan todos los backends.
func Normalize(s string) (string, error) {
	oid, err := Parse(s)
	if err != nil {
		return "", err
	}
	return oid.Hex(), nil
}

// NormalizeAll aplica Normalize a cada id; nil => slice vacío.
func NormalizeAll(ids []string) ([]string, error) {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		n, err := Normalize(id)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// AllValid es true si todos los ids tienen formato válido (slice vacío incluido).
func AllValid(ids []string) bool {
	for _, id := range ids {
		if !IsValid(id) {
			return false
		}
	}
	return true
}
