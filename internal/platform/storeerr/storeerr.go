// Package storeerr define los errores que los adapters de storage devuelven
// para que los servicios y handlers no dependan del driver.
package storeerr

import "errors"

var (
	ErrNotFound    = errors.New("store: not found")
	ErrDuplicate   = errors.New("store: duplicate key")
	ErrUnavailable = errors.New("store: unavailable")
)
