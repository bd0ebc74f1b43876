// Package service реализует бизнес-логику сокращения URL:
// проверку входного URL, назначение идентификатора и поиск по нему.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/shorturl/internal/models"
	"github.com/InQaaaaGit/shorturl/internal/resolver"
	"github.com/InQaaaaGit/shorturl/internal/storage"
)

// URLService определяет интерфейс сервиса для работы с URL
type URLService interface {
	// Submit проверяет URL и возвращает его запись, создавая ее при необходимости
	Submit(ctx context.Context, originalURL string) (models.URLRecord, error)
	// Resolve возвращает исходный URL по короткому идентификатору
	Resolve(ctx context.Context, shortID int) (string, bool)
	// CheckConnection проверяет доступность хранилища
	CheckConnection(ctx context.Context) error
}

// ShortenerService реализует URLService
type ShortenerService struct {
	storage  storage.URLStorage
	resolver resolver.HostResolver
	logger   *zap.Logger
}

var _ URLService = (*ShortenerService)(nil)

// NewShortenerService создает сервис поверх переданных хранилища и резолвера
func NewShortenerService(store storage.URLStorage, hostResolver resolver.HostResolver, logger *zap.Logger) *ShortenerService {
	return &ShortenerService{
		storage:  store,
		resolver: hostResolver,
		logger:   logger,
	}
}

// Submit проверяет URL в два этапа (разбор и разрешение хоста) и сохраняет его.
// Для уже сохраненного URL возвращается существующая запись без нового идентификатора.
// При ошибке проверки хранилище не изменяется.
func (s *ShortenerService) Submit(ctx context.Context, originalURL string) (models.URLRecord, error) {
	parsed, err := parseAbsoluteURL(originalURL)
	if err != nil {
		s.logger.Info("Rejected malformed URL", zap.String("url", originalURL), zap.Error(err))
		return models.URLRecord{}, &ValidationError{
			URL: originalURL,
			Err: fmt.Errorf("%w: %w", ErrMalformedURL, err),
		}
	}

	if _, err := s.resolver.Resolve(ctx, parsed.Hostname()); err != nil {
		s.logger.Info("Rejected URL with unresolvable host",
			zap.String("url", originalURL),
			zap.String("host", parsed.Hostname()),
			zap.Error(err))
		return models.URLRecord{}, &ValidationError{
			URL: originalURL,
			Err: fmt.Errorf("%w: %w", ErrUnresolvableHost, err),
		}
	}

	record, err := s.storage.Save(ctx, originalURL)
	if err != nil {
		if errors.Is(err, storage.ErrOriginalURLConflict) {
			s.logger.Info("URL already exists", zap.String("original_url", originalURL), zap.Int("short_url", record.ShortURL))
			return record, nil
		}
		return models.URLRecord{}, fmt.Errorf("error saving URL: %w", err)
	}

	s.logger.Info("Short URL created", zap.String("original_url", record.OriginalURL), zap.Int("short_url", record.ShortURL))
	return record, nil
}

// Resolve возвращает исходный URL по короткому идентификатору
func (s *ShortenerService) Resolve(ctx context.Context, shortID int) (string, bool) {
	record, err := s.storage.Get(ctx, shortID)
	if err != nil {
		if !errors.Is(err, storage.ErrURLNotFound) {
			s.logger.Error("Error getting URL", zap.Int("short_url", shortID), zap.Error(err))
		}
		return "", false
	}
	return record.OriginalURL, true
}

// CheckConnection проверяет доступность хранилища, если оно это поддерживает
func (s *ShortenerService) CheckConnection(ctx context.Context) error {
	if checker, ok := s.storage.(storage.ConnectionChecker); ok {
		return checker.CheckConnection(ctx)
	}
	return nil
}

var (
	errNotAbsolute = errors.New("scheme and host are required")
	errInvalidPort = errors.New("port out of range")
)

const maxPort = 65535

// parseAbsoluteURL разбирает строку и требует наличия схемы и имени хоста
func parseAbsoluteURL(raw string) (*url.URL, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if parsed.Scheme == "" || parsed.Hostname() == "" {
		return nil, errNotAbsolute
	}
	if port := parsed.Port(); port != "" {
		// url.Parse проверяет только, что порт состоит из цифр
		if n, err := strconv.Atoi(port); err != nil || n > maxPort {
			return nil, fmt.Errorf("%w: %s", errInvalidPort, port)
		}
	}
	return parsed, nil
}
