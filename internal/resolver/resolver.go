// Package resolver проверяет, что имя хоста разрешается в сетевой адрес.
// Одновременные проверки одного хоста объединяются в один запрос к DNS,
// каждая проверка ограничена таймаутом.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultTimeout = 5 * time.Second

var (
	// ErrUnresolvableHost возвращается, если хост не удалось разрешить, в том числе по таймауту
	ErrUnresolvableHost = errors.New("host cannot be resolved")

	errNoAddresses = errors.New("no addresses found")
)

// HostResolver определяет интерфейс проверки разрешимости хоста
type HostResolver interface {
	Resolve(ctx context.Context, host string) ([]string, error)
}

// LookupFunc выполняет разрешение имени хоста в адреса
type LookupFunc func(ctx context.Context, host string) ([]string, error)

// DNSResolver реализует HostResolver поверх системного резолвера
type DNSResolver struct {
	lookup  LookupFunc
	timeout time.Duration
	group   singleflight.Group
	logger  *zap.Logger
}

var _ HostResolver = (*DNSResolver)(nil)

// Option настраивает DNSResolver
type Option func(*DNSResolver)

// WithTimeout задает предельное время одной проверки
func WithTimeout(timeout time.Duration) Option {
	return func(r *DNSResolver) {
		if timeout > 0 {
			r.timeout = timeout
		}
	}
}

// WithLookupFunc подменяет функцию разрешения имени
func WithLookupFunc(fn LookupFunc) Option {
	return func(r *DNSResolver) {
		if fn != nil {
			r.lookup = fn
		}
	}
}

// NewDNSResolver создает DNSResolver. По умолчанию используется net.DefaultResolver.
func NewDNSResolver(logger *zap.Logger, opts ...Option) *DNSResolver {
	r := &DNSResolver{
		lookup:  net.DefaultResolver.LookupHost,
		timeout: defaultTimeout,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve возвращает адреса хоста или ошибку, обернутую в ErrUnresolvableHost.
// Запрос к DNS не зависит от отмены ctx конкретного вызывающего:
// его результат могут ждать другие запросы того же хоста.
func (r *DNSResolver) Resolve(ctx context.Context, host string) ([]string, error) {
	if host == "" {
		return nil, fmt.Errorf("%w: empty host", ErrUnresolvableHost)
	}

	waitCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	ch := r.group.DoChan(host, func() (interface{}, error) {
		lookupCtx, lookupCancel := context.WithTimeout(context.Background(), r.timeout)
		defer lookupCancel()

		addrs, err := r.lookup(lookupCtx, host)
		if err != nil {
			return nil, err
		}
		if len(addrs) == 0 {
			return nil, errNoAddresses
		}
		return addrs, nil
	})

	select {
	case <-waitCtx.Done():
		r.logger.Debug("Host lookup timed out", zap.String("host", host), zap.Error(waitCtx.Err()))
		return nil, fmt.Errorf("%w: %s: %w", ErrUnresolvableHost, host, waitCtx.Err())
	case res := <-ch:
		if res.Err != nil {
			r.logger.Debug("Host lookup failed", zap.String("host", host), zap.Error(res.Err))
			return nil, fmt.Errorf("%w: %s: %w", ErrUnresolvableHost, host, res.Err)
		}
		addrs, ok := res.Val.([]string)
		if !ok {
			return nil, fmt.Errorf("%w: %s: unexpected lookup result", ErrUnresolvableHost, host)
		}
		r.logger.Debug("Found address",
			zap.String("host", host),
			zap.Strings("addresses", addrs),
			zap.Bool("shared", res.Shared))
		return addrs, nil
	}
}
