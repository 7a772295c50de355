package router

import (
	"log/slog"
	"net/http"

	_ "adoptme-api/docs"
	mem "adoptme-api/internal/adapters/storage/memory"
	"adoptme-api/internal/domain/mocks"
	"adoptme-api/internal/domain/pets"
	"adoptme-api/internal/domain/users"
	"adoptme-api/internal/httpx"
	"adoptme-api/internal/middleware"
	"adoptme-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// LivenessMessage es lo que responde GET /.
const LivenessMessage = "¡Servidor funcionando correctamente!"

type Options struct {
	Logger *slog.Logger // nil = descartar logs

	// Si es false, /api-docs responde 404.
	DocsEnabled bool

	// Opcionales: si vienen nil se usan repos in-memory.
	Users users.Repository
	Pets  pets.Repository

	// Semilla del generador de mocks (0 = aleatoria).
	MockSeed uint64
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(LivenessMessage))
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.DocsEnabled {
		r.Get("/api-docs", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/api-docs/index.html", http.StatusMovedPermanently)
		})
		r.Get("/api-docs/*", httpSwagger.Handler(
			httpSwagger.URL("/api-docs/doc.json"),
		))
	}

	userRepo := opts.Users
	if userRepo == nil {
		userRepo = mem.NewUserRepo()
	}
	petRepo := opts.Pets
	if petRepo == nil {
		petRepo = mem.NewPetRepo()
	}

	// Services por módulo
	usersSvc := users.NewService(userRepo)
	petsSvc := pets.NewService(petRepo)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, log)
	pets.RegisterRoutes(r, petsSvc, log)
	mocks.RegisterRoutes(r, mocks.NewGenerator(opts.MockSeed), usersSvc, petsSvc, log)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteMessage(w, http.StatusNotFound, "Ruta no encontrada.")
	})

	return r
}
