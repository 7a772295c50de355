// Package httpx junta lo que antes estaba duplicado en cada handler (writeJSON, cuerpos de error).
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"adoptme-api/internal/platform/validation"
)

// MaxBodyBytes limita el cuerpo de POST/PUT.
const MaxBodyBytes = 1 << 20

const InvalidIDMessage = "El ID proporcionado no es un ObjectId válido."

// ErrorBody es la forma de todos los errores; cada rama completa los campos que le tocan.
type ErrorBody struct {
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

const (
	CodeInvalidBody      = "invalid_body"
	CodeStoreUnavailable = "store_unavailable"
)

var ErrInvalidBody = errors.New("invalid json body")

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorBody{Message: msg})
}

func WriteError(w http.ResponseWriter, status int, errMsg string, details string) {
	WriteJSON(w, status, ErrorBody{Error: errMsg, Details: details})
}

// InvalidID es la respuesta 400 común a GET/PUT/DELETE por id.
func InvalidID(w http.ResponseWriter) {
	WriteMessage(w, http.StatusBadRequest, InvalidIDMessage)
}

// DecodeJSON decodifica un único objeto JSON; cualquier problema => ErrInvalidBody envuelto.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data", ErrInvalidBody)
	}
	return nil
}

// WriteInputError responde 400 para body inválido o *validation.Error.
// Devuelve false si err no es un error de entrada.
func WriteInputError(w http.ResponseWriter, opError string, err error) bool {
	if errors.Is(err, ErrInvalidBody) {
		WriteJSON(w, http.StatusBadRequest, ErrorBody{
			Error:   opError,
			Code:    CodeInvalidBody,
			Message: "El cuerpo de la solicitud no es un JSON válido.",
			Details: err.Error(),
		})
		return true
	}

	ve, ok := validation.AsError(err)
	if !ok {
		return false
	}

	msg := "Uno o más campos no cumplen las restricciones."
	if ve.Kind == validation.KindMissingField {
		msg = "Faltan campos obligatorios."
	}
	WriteJSON(w, http.StatusBadRequest, ErrorBody{
		Error:   opError,
		Code:    string(ve.Kind),
		Message: msg,
		Details: strings.Join(ve.Fields, ", "),
	})
	return true
}

// WriteUnavailable es la respuesta 503 cuando el store no responde.
func WriteUnavailable(w http.ResponseWriter, opError string, err error) {
	WriteJSON(w, http.StatusServiceUnavailable, ErrorBody{
		Error:   opError,
		Code:    CodeStoreUnavailable,
		Message: "La base de datos no está disponible.",
		Details: err.Error(),
	})
}
