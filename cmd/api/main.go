// @title AdoptMe API
// @version 1.0
// @description API de usuarios, mascotas y datos mock.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"adoptme-api/internal/platform/config"
	"adoptme-api/internal/platform/httpclient"
	"adoptme-api/internal/platform/logger"
	"adoptme-api/internal/platform/server"
	"adoptme-api/internal/router"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx := context.Background()

	stores, err := router.OpenStores(ctx, cfg, log)
	if err != nil {
		log.Error("no se pudo conectar al store", "backend", cfg.Backend(), "error", err)
		return err
	}

	h := router.NewRouter(router.Options{
		Logger:      log,
		DocsEnabled: cfg.DocsEnabled,
		Users:       stores.Users,
		Pets:        stores.Pets,
	})

	if !cfg.AutoListen {
		// modo smoke: la app quedó armada; se valida /health en proceso y se sale.
		defer func() { _ = stores.Close(context.Background()) }()
		if err := smokeCheck(ctx, h); err != nil {
			log.Error("smoke check falló", "error", err)
			return err
		}
		log.Info("AUTO_LISTEN=false: aplicación armada, no se abre el puerto", "backend", stores.Backend)
		return nil
	}

	srv := server.New(h, server.Options{
		Addr:            cfg.Addr(),
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, log)
	srv.OnShutdown("store", stores.Close)

	log.Info("iniciando API", slog.String("addr", cfg.Addr()), slog.String("backend", string(stores.Backend)), slog.Bool("docs", cfg.DocsEnabled))
	return srv.Run()
}

// smokeCheck sirve h en 127.0.0.1 con un puerto libre y valida GET /health.
func smokeCheck(ctx context.Context, h http.Handler) error {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("smoke listen: %w", err)
	}

	srv := &http.Server{Handler: h, ReadHeaderTimeout: 5 * time.Second}
	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(ln) }()
	defer func() {
		_ = srv.Close()
		if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintln(os.Stderr, "smoke server:", err)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := httpclient.New("http://"+ln.Addr().String(), 0).Do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("health: status %d", res.StatusCode)
	}
	return nil
}
