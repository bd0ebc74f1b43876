// Package config собирает настройки сервиса из JSON-файла, флагов командной строки
// и переменных окружения.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	defaultPort            = 3000
	defaultEnvironment     = "development"
	defaultResolveTimeout  = 5 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultRateLimit       = 100
	defaultRateLimitWindow = 15 * time.Minute

	// EnvironmentProduction включает production-логгер.
	EnvironmentProduction = "production"
)

var (
	// ErrInvalidPort возвращается, если порт вне диапазона 0..65535
	ErrInvalidPort = errors.New("invalid port")
	// ErrTLSFilesRequired возвращается, если HTTPS включен без сертификата или ключа
	ErrTLSFilesRequired = errors.New("TLS certificate and key files are required when HTTPS is enabled")
	// ErrInvalidDuration возвращается для неположительных таймаутов и окна лимита
	ErrInvalidDuration = errors.New("duration must be positive")
)

// Config хранит конфигурацию приложения.
type Config struct {
	Port            int           `env:"PORT"`              // Порт HTTP-сервера
	Environment     string        `env:"ENVIRONMENT"`       // Окружение: development или production
	ResolveTimeout  time.Duration `env:"RESOLVE_TIMEOUT"`   // Предельное время проверки хоста
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`  // Время на корректную остановку сервера
	RateLimit       int           `env:"RATE_LIMIT"`        // Число запросов с одного IP за окно
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW"` // Окно ограничения частоты запросов
	EnableHTTPS     string        `env:"ENABLE_HTTPS"`      // Любое непустое значение включает HTTPS
	TLSCertFile     string        `env:"TLS_CERT_FILE"`
	TLSKeyFile      string        `env:"TLS_KEY_FILE"`
	ConfigFile      string        `env:"CONFIG"` // Путь к JSON-файлу конфигурации
}

// Parse собирает конфигурацию с приоритетом:
// значения по умолчанию < JSON-файл < флаги < переменные окружения.
func Parse(args []string) (*Config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Порт HTTP-сервера (env: PORT)")
	fs.StringVar(&cfg.Environment, "e", cfg.Environment, "Окружение: development или production (env: ENVIRONMENT)")
	fs.DurationVar(&cfg.ResolveTimeout, "resolve-timeout", cfg.ResolveTimeout, "Таймаут проверки хоста (env: RESOLVE_TIMEOUT)")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Таймаут остановки сервера (env: SHUTDOWN_TIMEOUT)")
	fs.IntVar(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "Лимит запросов с одного IP (env: RATE_LIMIT)")
	fs.DurationVar(&cfg.RateLimitWindow, "rate-limit-window", cfg.RateLimitWindow, "Окно лимита запросов (env: RATE_LIMIT_WINDOW)")
	fs.StringVar(&cfg.EnableHTTPS, "s", cfg.EnableHTTPS, "Включить HTTPS (env: ENABLE_HTTPS)")
	fs.StringVar(&cfg.TLSCertFile, "tls-cert", cfg.TLSCertFile, "Файл сертификата (env: TLS_CERT_FILE)")
	fs.StringVar(&cfg.TLSKeyFile, "tls-key", cfg.TLSKeyFile, "Файл ключа (env: TLS_KEY_FILE)")
	fs.StringVar(&cfg.ConfigFile, "c", "", "Путь к JSON-файлу конфигурации (env: CONFIG)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	// Файл конфигурации применяется до флагов, поэтому заданные флаги
	// переносим поверх значений из файла отдельно.
	configFile := cfg.ConfigFile
	if v, ok := os.LookupEnv("CONFIG"); ok && v != "" {
		configFile = v
	}
	if configFile != "" {
		fileCfg, err := LoadJSONConfig(configFile)
		if err != nil {
			return nil, err
		}
		explicit := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		fileCfg.apply(cfg, explicit)
	}

	// Переменные окружения имеют наивысший приоритет
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Port:            defaultPort,
		Environment:     defaultEnvironment,
		ResolveTimeout:  defaultResolveTimeout,
		ShutdownTimeout: defaultShutdownTimeout,
		RateLimit:       defaultRateLimit,
		RateLimitWindow: defaultRateLimitWindow,
	}
}

// Validate проверяет согласованность настроек.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}
	if c.ResolveTimeout <= 0 {
		return fmt.Errorf("%w: resolve timeout %s", ErrInvalidDuration, c.ResolveTimeout)
	}
	if c.RateLimit > 0 && c.RateLimitWindow <= 0 {
		return fmt.Errorf("%w: rate limit window %s", ErrInvalidDuration, c.RateLimitWindow)
	}
	if c.IsHTTPSEnabled() && (c.TLSCertFile == "" || c.TLSKeyFile == "") {
		return ErrTLSFilesRequired
	}
	return nil
}

// Address возвращает адрес прослушивания в форме ":port".
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsHTTPSEnabled сообщает, включен ли HTTPS.
func (c *Config) IsHTTPSEnabled() bool {
	return c.EnableHTTPS != ""
}

// IsProduction сообщает, запущен ли сервис в production-окружении.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}
