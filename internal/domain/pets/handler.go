package pets

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"adoptme-api/internal/httpx"
	"adoptme-api/internal/platform/objectid"

	"github.com/go-chi/chi/v5"
)

const (
	msgListError   = "Error al obtener mascotas."
	msgGetError    = "Error al obtener la mascota."
	msgCreateError = "Error al crear la mascota."
	msgUpdateError = "Error al actualizar la mascota."
	msgDeleteError = "Error al eliminar la mascota."

	msgNotFound       = "Mascota no encontrada."
	msgUpdateNotFound = "Mascota no encontrada para actualizar."
	msgDeleteNotFound = "Mascota no encontrada para eliminar."

	msgCreated = "Mascota creada con éxito"
	msgUpdated = "Mascota actualizada con éxito"
	msgDeleted = "Mascota eliminada con éxito"
)

func RegisterRoutes(r chi.Router, svc *Service, log *slog.Logger) {
	r.Route("/api/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc, log))
		pr.Post("/", createPetHandler(svc, log))

		pr.Get("/{petID}", getPetHandler(svc, log))
		pr.Put("/{petID}", updatePetHandler(svc, log))
		pr.Delete("/{petID}", deletePetHandler(svc, log))
	})
}

// PetResponse representa una mascota devuelta por la API (también la usa /api/mocks).
type PetResponse struct {
	ID        string     `json:"_id" example:"507f1f77bcf86cd799439011"`
	Name      string     `json:"name" example:"Milo"`
	Species   string     `json:"species" example:"dog"`
	BirthDate *time.Time `json:"birthDate,omitempty" example:"2020-05-01T00:00:00Z"`
	Adopted   bool       `json:"adopted"`
	Owner     string     `json:"owner,omitempty"`
}

type petMessageResponse struct {
	Message string      `json:"message"`
	Pet     PetResponse `json:"pet"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} PetResponse
// @Failure 500 {object} httpx.ErrorBody "Error al obtener mascotas."
// @Router /api/pets [get]
func listPetsHandler(svc *Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.ErrorContext(r.Context(), "list pets", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, msgListError, "")
			return
		}

		out := make([]PetResponse, 0, len(items))
		for _, p := range items {
			out = append(out, ToPetResponse(p))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Obtener mascota por ID
// @Tags pets
// @Produce json
// @Param petID path string true "ObjectId de la mascota"
// @Success 200 {object} PetResponse
// @Failure 400 {object} httpx.ErrorBody "El ID proporcionado no es un ObjectId válido."
// @Failure 404 {object} httpx.ErrorBody "Mascota no encontrada."
// @Failure 500 {object} httpx.ErrorBody "Error al obtener la mascota."
// @Router /api/pets/{petID} [get]
func getPetHandler(svc *Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if !objectid.IsValid(petID) {
			httpx.InvalidID(w)
			return
		}

		p, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.WriteMessage(w, http.StatusNotFound, msgNotFound)
				return
			}
			log.ErrorContext(r.Context(), "get pet", "pet_id", petID, "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, msgGetError, err.Error())
			return
		}

		httpx.WriteJSON(w, http.StatusOK, ToPetResponse(p))
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description birthDate acepta RFC3339 o YYYY-MM-DD. owner es un ObjectId opcional (no se verifica que exista).
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body CreateInput true "Datos de la mascota"
// @Success 201 {object} petMessageResponse
// @Failure 400 {object} httpx.ErrorBody "invalid_body / missing_field / constraint_violation"
// @Failure 500 {object} httpx.ErrorBody "Error al crear la mascota."
// @Failure 503 {object} httpx.ErrorBody "store_unavailable"
// @Router /api/pets [post]
func createPetHandler(svc *Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in CreateInput
		if err := httpx.DecodeJSON(w, r, &in); err != nil {
			httpx.WriteInputError(w, msgCreateError, err)
			return
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			if httpx.WriteInputError(w, msgCreateError, err) {
				return
			}
			log.ErrorContext(r.Context(), "create pet", "error", err)
			if errors.Is(err, ErrUnavailable) {
				httpx.WriteUnavailable(w, msgCreateError, err)
				return
			}
			httpx.WriteError(w, http.StatusInternalServerError, msgCreateError, "")
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, petMessageResponse{Message: msgCreated, Pet: ToPetResponse(p)})
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Sobrescribe solo los campos enviados.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ObjectId de la mascota"
// @Param payload body UpdateInput true "Campos a actualizar"
// @Success 200 {object} petMessageResponse
// @Failure 400 {object} httpx.ErrorBody "ID inválido / invalid_body / constraint_violation"
// @Failure 404 {object} httpx.ErrorBody "Mascota no encontrada para actualizar."
// @Failure 500 {object} httpx.ErrorBody "Error al actualizar la mascota."
// @Failure 503 {object} httpx.ErrorBody "store_unavailable"
// @Router /api/pets/{petID} [put]
func updatePetHandler(svc *Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if !objectid.IsValid(petID) {
			httpx.InvalidID(w)
			return
		}

		var in UpdateInput
		if err := httpx.DecodeJSON(w, r, &in); err != nil {
			httpx.WriteInputError(w, msgUpdateError, err)
			return
		}

		p, err := svc.Update(r.Context(), petID, in)
		if err != nil {
			if httpx.WriteInputError(w, msgUpdateError, err) {
				return
			}
			switch {
			case errors.Is(err, ErrNotFound):
				httpx.WriteMessage(w, http.StatusNotFound, msgUpdateNotFound)
			case errors.Is(err, ErrUnavailable):
				log.ErrorContext(r.Context(), "update pet: store unavailable", "pet_id", petID, "error", err)
				httpx.WriteUnavailable(w, msgUpdateError, err)
			default:
				log.ErrorContext(r.Context(), "update pet", "pet_id", petID, "error", err)
				httpx.WriteError(w, http.StatusInternalServerError, msgUpdateError, err.Error())
			}
			return
		}

		httpx.WriteJSON(w, http.StatusOK, petMessageResponse{Message: msgUpdated, Pet: ToPetResponse(p)})
	}
}

// deletePetHandler godoc
// @Summary Eliminar mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ObjectId de la mascota"
// @Success 200 {object} petMessageResponse
// @Failure 400 {object} httpx.ErrorBody "El ID proporcionado no es un ObjectId válido."
// @Failure 404 {object} httpx.ErrorBody "Mascota no encontrada para eliminar."
// @Failure 500 {object} httpx.ErrorBody "Error al eliminar la mascota."
// @Router /api/pets/{petID} [delete]
func deletePetHandler(svc *Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if !objectid.IsValid(petID) {
			httpx.InvalidID(w)
			return
		}

		p, err := svc.Delete(r.Context(), petID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.WriteMessage(w, http.StatusNotFound, msgDeleteNotFound)
				return
			}
			log.ErrorContext(r.Context(), "delete pet", "pet_id", petID, "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, msgDeleteError, err.Error())
			return
		}

		httpx.WriteJSON(w, http.StatusOK, petMessageResponse{Message: msgDeleted, Pet: ToPetResponse(p)})
	}
}

func ToPetResponse(p Pet) PetResponse {
	return PetResponse{
		ID:        p.ID,
		Name:      p.Name,
		Species:   p.Species,
		BirthDate: p.BirthDate,
		Adopted:   p.Adopted,
		Owner:     p.Owner,
	}
}
