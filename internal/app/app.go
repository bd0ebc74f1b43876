// Package app содержит основную структуру приложения и логику инициализации.
// Собирает хранилище, проверку хостов, сервис и обработчики в один HTTP-роутер.
package app

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	"github.com/InQaaaaGit/shorturl/internal/config"
	"github.com/InQaaaaGit/shorturl/internal/handler"
	"github.com/InQaaaaGit/shorturl/internal/httputil"
	"github.com/InQaaaaGit/shorturl/internal/middleware"
	"github.com/InQaaaaGit/shorturl/internal/resolver"
	"github.com/InQaaaaGit/shorturl/internal/server"
	"github.com/InQaaaaGit/shorturl/internal/service"
	"github.com/InQaaaaGit/shorturl/internal/storage"
)

// App представляет основное приложение сервиса сокращения URL.
type App struct {
	config  *config.Config
	router  *chi.Mux
	logger  *zap.Logger
	handler *handler.Handler
}

// Option настраивает App при создании
type Option func(*options)

type options struct {
	hostResolver resolver.HostResolver
	store        storage.URLStorage
}

// WithHostResolver подменяет проверку хостов, по умолчанию используется системный DNS
func WithHostResolver(r resolver.HostResolver) Option {
	return func(o *options) {
		o.hostResolver = r
	}
}

// WithStorage подменяет хранилище, по умолчанию используется хранилище в памяти
func WithStorage(s storage.URLStorage) Option {
	return func(o *options) {
		o.store = s
	}
}

// NewApp создает приложение и регистрирует маршруты.
func NewApp(cfg *config.Config, logger *zap.Logger, opts ...Option) *App {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.store == nil {
		o.store = storage.NewMemoryStorage(logger)
	}
	if o.hostResolver == nil {
		o.hostResolver = resolver.NewDNSResolver(logger, resolver.WithTimeout(cfg.ResolveTimeout))
	}

	svc := service.NewShortenerService(o.store, o.hostResolver, logger)

	a := &App{
		config:  cfg,
		router:  chi.NewRouter(),
		logger:  logger,
		handler: handler.NewHandler(svc, logger),
	}
	a.setupRoutes()
	return a
}

// Router возвращает настроенный роутер
func (a *App) Router() http.Handler {
	return a.router
}

// Run запускает HTTP или HTTPS сервер и блокируется до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	return server.NewHTTPServer(a.router, a.config, a.logger).Run(ctx)
}

func (a *App) setupRoutes() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.LoggerMiddleware(a.logger))
	a.router.Use(middleware.Recoverer(a.logger))
	a.router.Use(middleware.SecureHeaders)
	a.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding", httputil.HeaderRequestID},
		ExposedHeaders: []string{httputil.HeaderRequestID},
		MaxAge:         300,
	}))
	if a.config.RateLimit > 0 {
		a.router.Use(httprate.Limit(
			a.config.RateLimit,
			a.config.RateLimitWindow,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(a.handleTooManyRequests),
		))
	}
	a.router.Use(chimw.GetHead)
	a.router.Use(middleware.GzipMiddleware(a.logger))

	a.router.Get("/", a.handler.HandleIndex)
	a.router.Post("/api/shorturl", a.handler.HandleShortenURL)
	a.router.Get("/api/shorturl/{id}", a.handler.HandleRedirect)
	a.router.Get("/ping", a.handler.HandlePing)

	a.router.NotFound(a.handler.HandleNotFound)
	a.router.MethodNotAllowed(a.handler.HandleNotFound)
}

func (a *App) handleTooManyRequests(w http.ResponseWriter, r *http.Request) {
	a.logger.Warn("Rate limit exceeded",
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.String("remote_addr", r.RemoteAddr))
	http.Error(w, httputil.MessageTooManyRequest, http.StatusTooManyRequests)
}
