// Package server предоставляет общую функциональность для запуска HTTP и HTTPS серверов.
// Пакет инкапсулирует инициализацию логгера, запуск сервера и его корректную остановку.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/InQaaaaGit/shorturl/internal/config"
)

// HTTPServer представляет HTTP сервер с общей логикой запуска и остановки
type HTTPServer struct {
	server *http.Server
	config *config.Config
	logger *zap.Logger
}

// NewHTTPServer создает новый HTTP сервер поверх handler
func NewHTTPServer(handler http.Handler, cfg *config.Config, logger *zap.Logger) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:              cfg.Address(),
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       120 * time.Second,
			ErrorLog:          zap.NewStdLog(logger),
		},
		config: cfg,
		logger: logger,
	}
}

// Run открывает порт из конфигурации и обслуживает запросы до отмены ctx
func (s *HTTPServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает запросы на ln. После отмены ctx сервер перестает принимать
// соединения и ждет завершения активных запросов не дольше ShutdownTimeout.
func (s *HTTPServer) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := s.serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("Shutting down server", zap.Duration("timeout", s.config.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down server: %w", err)
		}
		s.logger.Info("Server stopped")
		return nil
	})

	return g.Wait()
}

func (s *HTTPServer) serve(ln net.Listener) error {
	if s.config.IsHTTPSEnabled() {
		s.logger.Info("Starting HTTPS server",
			zap.String("address", ln.Addr().String()),
			zap.String("cert", s.config.TLSCertFile),
			zap.String("key", s.config.TLSKeyFile))
		return s.server.ServeTLS(ln, s.config.TLSCertFile, s.config.TLSKeyFile)
	}

	s.logger.Info("Starting HTTP server", zap.String("address", ln.Addr().String()))
	return s.server.Serve(ln)
}

// InitLogger создает production или development логгер и функцию его синхронизации
func InitLogger(production bool) (*zap.Logger, func(), error) {
	var (
		logger *zap.Logger
		err    error
	)
	if production {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing logger: %w", err)
	}

	cleanup := func() {
		if err := logger.Sync(); err != nil {
			log.Printf("Error syncing logger: %v", err)
		}
	}

	return logger, cleanup, nil
}
