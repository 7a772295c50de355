package router

import (
	"context"
	"fmt"
	"log/slog"

	mem "adoptme-api/internal/adapters/storage/memory"
	"adoptme-api/internal/adapters/storage/mongodb"
	pg "adoptme-api/internal/adapters/storage/postgres"
	"adoptme-api/internal/domain/pets"
	"adoptme-api/internal/domain/users"
	"adoptme-api/internal/platform/config"
)

// Stores son los repos ya conectados según el backend elegido en la config.
type Stores struct {
	Backend config.Backend
	Users   users.Repository
	Pets    pets.Repository

	// Close libera la conexión; en memoria no hace nada.
	Close func(ctx context.Context) error
}

// OpenStores conecta una sola vez al backend configurado y prepara índices/tablas.
func OpenStores(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Stores, error) {
	backend := cfg.Backend()

	switch backend {
	case config.BackendMongo:
		client, err := mongodb.Open(ctx, cfg.MongoURL, cfg.StoreTimeout)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.MongoDatabase)

		idxCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
		defer cancel()
		if err := mongodb.EnsureIndexes(idxCtx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}

		log.Info("store conectado", "backend", backend, "database", cfg.MongoDatabase)
		return &Stores{
			Backend: backend,
			Users:   mongodb.NewUsersRepo(db),
			Pets:    mongodb.NewPetsRepo(db),
			Close:   client.Disconnect,
		}, nil

	case config.BackendPostgres:
		db, err := pg.Open(ctx, cfg.PostgresDSN, cfg.StoreTimeout)
		if err != nil {
			return nil, err
		}

		migCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
		defer cancel()
		if err := pg.Migrate(migCtx, db); err != nil {
			_ = db.Close()
			return nil, err
		}

		log.Info("store conectado", "backend", backend)
		return &Stores{
			Backend: backend,
			Users:   pg.NewUsersRepo(db),
			Pets:    pg.NewPetsRepo(db),
			Close:   func(context.Context) error { return db.Close() },
		}, nil

	case config.BackendMemory:
		log.Warn("sin MONGODB_URL ni DB_DSN: usando store en memoria")
		return &Stores{
			Backend: backend,
			Users:   mem.NewUserRepo(),
			Pets:    mem.NewPetRepo(),
			Close:   func(context.Context) error { return nil },
		}, nil

	default:
		return nil, fmt.Errorf("backend desconocido: %q", backend)
	}
}
