package users

import (
	"errors"
	"log/slog"
	"net/http"

	"adoptme-api/internal/httpx"
	"adoptme-api/internal/platform/objectid"

	"github.com/go-chi/chi/v5"
)

const (
	msgListError   = "Error al obtener usuarios."
	msgGetError    = "Error al obtener el usuario."
	msgCreateError = "Error al crear el usuario."
	msgUpdateError = "Error al actualizar el usuario."
	msgDeleteError = "Error al eliminar el usuario."

	msgNotFound       = "Usuario no encontrado."
	msgUpdateNotFound = "Usuario no encontrado para actualizar."
	msgDeleteNotFound = "Usuario no encontrado para eliminar."

	msgCreated = "Usuario creado con éxito"
	msgUpdated = "Usuario actualizado con éxito"
	msgDeleted = "Usuario eliminado con éxito"
)

func RegisterRoutes(r chi.Router, svc *Service, log *slog.Logger) {
	r.Route("/api/users", func(ur chi.Router) {
		ur.Get("/", listUsersHandler(svc, log))
		ur.Post("/", createUserHandler(svc, log))

		ur.Get("/{userID}", getUserHandler(svc, log))
		ur.Put("/{userID}", updateUserHandler(svc, log))
		ur.Delete("/{userID}", deleteUserHandler(svc, log))
	})
}

// UserResponse representa un usuario devuelto por la API (también la usa /api/mocks).
type UserResponse struct {
	ID        string   `json:"_id" example:"507f1f77bcf86cd799439011"`
	FirstName string   `json:"first_name" example:"John"`
	LastName  string   `json:"last_name" example:"Doe"`
	Email     string   `json:"email" example:"john.doe@example.com"`
	Age       float64  `json:"age" example:"30"`
	Password  string   `json:"password" example:"securePassword123"`
	Role      Role     `json:"role" enums:"user,admin" example:"user"`
	Pets      []string `json:"pets"`
}

// userMessageResponse es la respuesta de create/update/delete.
type userMessageResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// listUsersHandler godoc
// @Summary Listar usuarios
// @Description Devuelve todos los usuarios en el orden natural del store.
// @Tags users
// @Produce json
// @Success 200 {array} UserResponse
// @Failure 500 {object} httpx.ErrorBody "Error al obtener usuarios."
// @Router /api/users [get]
func listUsersHandler(svc *Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.ErrorContext(r.Context(), "list users", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, msgListError, "")
			return
		}

		out := make([]UserResponse, 0, len(items))
		for _, u := range items {
			out = append(out, ToUserResponse(u))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getUserHandler godoc
// @Summary Obtener usuario por ID
// @Description Busca un usuario por su ObjectId. El formato del ID se valida antes de consultar la base.
// @Tags users
// @Produce json
// @Param userID path string true "ObjectId del usuario" example(507f1f77bcf86cd799439011)
// @Success 200 {object} UserResponse
// @Failure 400 {object} httpx.ErrorBody "El ID proporcionado no es un ObjectId válido."
// @Failure 404 {object} httpx.ErrorBody "Usuario no encontrado."
// @Failure 500 {object} httpx.ErrorBody "Error al obtener el usuario."
// @Router /api/users/{userID} [get]
func getUserHandler(svc *Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		if !objectid.IsValid(userID) {
			httpx.InvalidID(w)
			return
		}

		u, err := svc.GetByID(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				httpx.WriteMessage(w, http.StatusNotFound, msgNotFound)
			default:
				log.ErrorContext(r.Context(), "get user", "user_id", userID, "error", err)
				httpx.WriteError(w, http.StatusInternalServerError, msgGetError, err.Error())
			}
			return
		}

		httpx.WriteJSON(w, http.StatusOK, ToUserResponse(u))
	}
}

// createUserHandler godoc
// @Summary Crear usuario
// @Description Crea un usuario. role por defecto "user", pets por defecto []. Campos faltantes o inválidos => 400 con code missing_field / constraint_violation. Email duplicado => 500.
// @Tags users
// @Accept json
// @Produce json
// @Param payload body CreateInput true "Datos del usuario"
// @Success 201 {object} userMessageResponse
// @Failure 400 {object} httpx.ErrorBody "invalid_body / missing_field / constraint_violation"
// @Failure 500 {object} httpx.ErrorBody "Error al crear el usuario."
// @Failure 503 {object} httpx.ErrorBody "store_unavailable"
// @Router /api/users [post]
func createUserHandler(svc *Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in CreateInput
		if err := httpx.DecodeJSON(w, r, &in); err != nil {
			httpx.WriteInputError(w, msgCreateError, err)
			return
		}

		u, err := svc.Create(r.Context(), in)
		if err != nil {
			if httpx.WriteInputError(w, msgCreateError, err) {
				return
			}
			if errors.Is(err, ErrUnavailable) {
				log.ErrorContext(r.Context(), "create user: store unavailable", "error", err)
				httpx.WriteUnavailable(w, msgCreateError, err)
				return
			}
			if errors.Is(err, ErrDuplicateEmail) {
				log.WarnContext(r.Context(), "create user: duplicate email", "error", err)
			} else {
				log.ErrorContext(r.Context(), "create user", "error", err)
			}
			httpx.WriteError(w, http.StatusInternalServerError, msgCreateError, "")
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, userMessageResponse{Message: msgCreated, User: ToUserResponse(u)})
	}
}

// updateUserHandler godoc
// @Summary Actualizar usuario
// @Description Sobrescribe solo los campos enviados; el resto queda igual. Los campos enviados se validan igual que en la creación.
// @Tags users
// @Accept json
// @Produce json
// @Param userID path string true "ObjectId del usuario"
// @Param payload body UpdateInput true "Campos a actualizar"
// @Success 200 {object} userMessageResponse
// @Failure 400 {object} httpx.ErrorBody "ID inválido / invalid_body / constraint_violation"
// @Failure 404 {object} httpx.ErrorBody "Usuario no encontrado para actualizar."
// @Failure 500 {object} httpx.ErrorBody "Error al actualizar el usuario."
// @Failure 503 {object} httpx.ErrorBody "store_unavailable"
// @Router /api/users/{userID} [put]
func updateUserHandler(svc *Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		if !objectid.IsValid(userID) {
			httpx.InvalidID(w)
			return
		}

		var in UpdateInput
		if err := httpx.DecodeJSON(w, r, &in); err != nil {
			httpx.WriteInputError(w, msgUpdateError, err)
			return
		}

		u, err := svc.Update(r.Context(), userID, in)
		if err != nil {
			if httpx.WriteInputError(w, msgUpdateError, err) {
				return
			}
			switch {
			case errors.Is(err, ErrNotFound):
				httpx.WriteMessage(w, http.StatusNotFound, msgUpdateNotFound)
			case errors.Is(err, ErrUnavailable):
				log.ErrorContext(r.Context(), "update user: store unavailable", "user_id", userID, "error", err)
				httpx.WriteUnavailable(w, msgUpdateError, err)
			default:
				log.ErrorContext(r.Context(), "update user", "user_id", userID, "error", err)
				httpx.WriteError(w, http.StatusInternalServerError, msgUpdateError, err.Error())
			}
			return
		}

		httpx.WriteJSON(w, http.StatusOK, userMessageResponse{Message: msgUpdated, User: ToUserResponse(u)})
	}
}

// deleteUserHandler godoc
// @Summary Eliminar usuario
// @Description Borra el usuario y devuelve el documento eliminado.
// @Tags users
// @Produce json
// @Param userID path string true "ObjectId del usuario"
// @Success 200 {object} userMessageResponse
// @Failure 400 {object} httpx.ErrorBody "El ID proporcionado no es un ObjectId válido."
// @Failure 404 {object} httpx.ErrorBody "Usuario no encontrado para eliminar."
// @Failure 500 {object} httpx.ErrorBody "Error al eliminar el usuario."
// @Router /api/users/{userID} [delete]
func deleteUserHandler(svc *Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		if !objectid.IsValid(userID) {
			httpx.InvalidID(w)
			return
		}

		u, err := svc.Delete(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				httpx.WriteMessage(w, http.StatusNotFound, msgDeleteNotFound)
			default:
				log.ErrorContext(r.Context(), "delete user", "user_id", userID, "error", err)
				httpx.WriteError(w, http.StatusInternalServerError, msgDeleteError, err.Error())
			}
			return
		}

		httpx.WriteJSON(w, http.StatusOK, userMessageResponse{Message: msgDeleted, User: ToUserResponse(u)})
	}
}

func ToUserResponse(u User) UserResponse {
	pets := u.Pets
	if pets == nil {
		pets = []string{}
	}
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Age:       u.Age,
		Password:  u.Password,
		Role:      u.Role,
		Pets:      pets,
	}
}
