package mocks

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"adoptme-api/internal/domain/pets"
	"adoptme-api/internal/domain/users"
	"adoptme-api/internal/httpx"

	"github.com/go-chi/chi/v5"
)

const (
	defaultPetCount  = 100
	defaultUserCount = 50

	msgGenerated     = "Datos generados con éxito"
	msgGenerateError = "Error al generar datos."
	msgInvalidCount  = "count debe ser un entero entre 0 y 1000."
)

func RegisterRoutes(r chi.Router, gen *Generator, usersSvc *users.Service, petsSvc *pets.Service, log *slog.Logger) {
	r.Route("/api/mocks", func(mr chi.Router) {
		mr.Get("/mockingpets", mockingPetsHandler(gen))
		mr.Get("/mockingusers", mockingUsersHandler(gen))
		mr.Post("/generateData", generateDataHandler(gen, usersSvc, petsSvc, log))
	})
}

// generateDataRequest indica cuántos registros generar e insertar.
type generateDataRequest struct {
	Users int `json:"users" example:"10"`
	Pets  int `json:"pets" example:"20"`
}

type generateDataResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
	Users   int    `json:"users"`
	Pets    int    `json:"pets"`
}

// mockingPetsHandler godoc
// @Summary Generar mascotas mock
// @Description Genera mascotas sintéticas sin guardarlas.
// @Tags mocks
// @Produce json
// @Param count query int false "Cantidad (default 100, máx 1000)"
// @Success 200 {array} pets.PetResponse
// @Failure 400 {object} httpx.ErrorBody
// @Router /api/mocks/mockingpets [get]
func mockingPetsHandler(gen *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := parseCount(r.URL.Query().Get("count"), defaultPetCount)
		if err != nil {
			httpx.WriteMessage(w, http.StatusBadRequest, msgInvalidCount)
			return
		}

		items := gen.Pets(n)
		out := make([]pets.PetResponse, 0, len(items))
		for _, p := range items {
			out = append(out, pets.ToPetResponse(p))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// mockingUsersHandler godoc
// @Summary Generar usuarios mock
// @Description Genera usuarios sintéticos sin guardarlos (password fija, pets vacío).
// @Tags mocks
// @Produce json
// @Param count query int false "Cantidad (default 50, máx 1000)"
// @Success 200 {array} users.UserResponse
// @Failure 400 {object} httpx.ErrorBody
// @Router /api/mocks/mockingusers [get]
func mockingUsersHandler(gen *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := parseCount(r.URL.Query().Get("count"), defaultUserCount)
		if err != nil {
			httpx.WriteMessage(w, http.StatusBadRequest, msgInvalidCount)
			return
		}

		items := gen.Users(n)
		out := make([]users.UserResponse, 0, len(items))
		for _, u := range items {
			out = append(out, users.ToUserResponse(u))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// generateDataHandler godoc
// @Summary Generar e insertar datos mock
// @Description Genera usuarios y mascotas y los inserta. Si una inserción falla se corta y se informa cuántos se guardaron.
// @Tags mocks
// @Accept json
// @Produce json
// @Param payload body generateDataRequest true "Cantidades"
// @Success 201 {object} generateDataResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 500 {object} generateDataResponse
// @Router /api/mocks/generateData [post]
func generateDataHandler(gen *Generator, usersSvc *users.Service, petsSvc *pets.Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateDataRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteInputError(w, msgGenerateError, err)
			return
		}
		if !validCount(req.Users) || !validCount(req.Pets) {
			httpx.WriteMessage(w, http.StatusBadRequest, msgInvalidCount)
			return
		}

		res := generateDataResponse{}

		nu, err := usersSvc.Import(r.Context(), gen.Users(req.Users))
		res.Users = nu
		if err == nil {
			res.Pets, err = petsSvc.Import(r.Context(), gen.Pets(req.Pets))
		}
		if err != nil {
			log.ErrorContext(r.Context(), "generate data", "users", res.Users, "pets", res.Pets, "error", err)
			res.Error = msgGenerateError
			res.Details = err.Error()
			status := http.StatusInternalServerError
			if errors.Is(err, users.ErrUnavailable) {
				status = http.StatusServiceUnavailable
			}
			httpx.WriteJSON(w, status, res)
			return
		}

		res.Message = msgGenerated
		httpx.WriteJSON(w, http.StatusCreated, res)
	}
}

var errInvalidCount = errors.New("invalid count")

func parseCount(raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || !validCount(n) {
		return 0, errInvalidCount
	}
	return n, nil
}

func validCount(n int) bool {
	return n >= 0 && n <= MaxCount
}
