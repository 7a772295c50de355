// Package server maneja el ciclo de vida del http.Server con apagado ordenado.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// ShutdownFunc libera un recurso al apagar (p.ej. desconectar Mongo).
type ShutdownFunc func(ctx context.Context) error

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	logger          *slog.Logger
	onShutdown      []namedShutdown
}

type namedShutdown struct {
	name string
	fn   ShutdownFunc
}

type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func New(handler http.Handler, opts Options, logger *slog.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         opts.Addr,
			Handler:      handler,
			ReadTimeout:  opts.ReadTimeout,
			WriteTimeout: opts.WriteTimeout,
		},
		shutdownTimeout: opts.ShutdownTimeout,
		logger:          logger,
	}
}

// OnShutdown registra fn; se ejecutan en orden inverso después de parar HTTP.
func (s *Server) OnShutdown(name string, fn ShutdownFunc) {
	s.onShutdown = append(s.onShutdown, namedShutdown{name: name, fn: fn})
}

// Run bloquea hasta SIGINT/SIGTERM o error del listener.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.RunContext(ctx)
}

// RunContext es Run con un ctx propio; cancelar ctx dispara el apagado.
func (s *Server) RunContext(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("servidor escuchando", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			s.runShutdownFuncs()
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("apagando servidor")
		return s.Shutdown()
	}
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	var errs []error
	if err := s.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	errs = append(errs, s.shutdownComponents(ctx)...)
	return errors.Join(errs...)
}

func (s *Server) runShutdownFuncs() {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	_ = s.shutdownComponents(ctx)
}

func (s *Server) shutdownComponents(ctx context.Context) []error {
	var errs []error
	for i := len(s.onShutdown) - 1; i >= 0; i-- {
		c := s.onShutdown[i]
		if err := c.fn(ctx); err != nil {
			s.logger.Error("error al apagar componente", "name", c.name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
			continue
		}
		s.logger.Info("componente detenido", "name", c.name)
	}
	return errs
}
