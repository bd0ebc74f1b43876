package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// JSONConfig описывает файл конфигурации. Незаданные поля остаются nil
// и не перекрывают значения по умолчанию.
type JSONConfig struct {
	Port            *int    `json:"port,omitempty"`
	Environment     *string `json:"environment,omitempty"`
	ResolveTimeout  *string `json:"resolve_timeout,omitempty"`
	ShutdownTimeout *string `json:"shutdown_timeout,omitempty"`
	RateLimit       *int    `json:"rate_limit,omitempty"`
	RateLimitWindow *string `json:"rate_limit_window,omitempty"`
	EnableHTTPS     *bool   `json:"enable_https,omitempty"`
	TLSCertFile     *string `json:"tls_cert_file,omitempty"`
	TLSKeyFile      *string `json:"tls_key_file,omitempty"`

	resolveTimeout  time.Duration
	shutdownTimeout time.Duration
	rateLimitWindow time.Duration
}

// LoadJSONConfig читает файл конфигурации. Отсутствующий файл дает пустую конфигурацию.
func LoadJSONConfig(path string) (*JSONConfig, error) {
	cfg := &JSONConfig{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if cfg.resolveTimeout, err = parseDuration(cfg.ResolveTimeout); err != nil {
		return nil, fmt.Errorf("resolve_timeout: %w", err)
	}
	if cfg.shutdownTimeout, err = parseDuration(cfg.ShutdownTimeout); err != nil {
		return nil, fmt.Errorf("shutdown_timeout: %w", err)
	}
	if cfg.rateLimitWindow, err = parseDuration(cfg.RateLimitWindow); err != nil {
		return nil, fmt.Errorf("rate_limit_window: %w", err)
	}

	return cfg, nil
}

func parseDuration(s *string) (time.Duration, error) {
	if s == nil {
		return 0, nil
	}
	return time.ParseDuration(*s)
}

// apply переносит заданные в файле значения в cfg, пропуская поля,
// явно указанные флагами командной строки.
func (j *JSONConfig) apply(cfg *Config, explicitFlags map[string]bool) {
	if j.Port != nil && !explicitFlags["p"] {
		cfg.Port = *j.Port
	}
	if j.Environment != nil && !explicitFlags["e"] {
		cfg.Environment = *j.Environment
	}
	if j.ResolveTimeout != nil && !explicitFlags["resolve-timeout"] {
		cfg.ResolveTimeout = j.resolveTimeout
	}
	if j.ShutdownTimeout != nil && !explicitFlags["shutdown-timeout"] {
		cfg.ShutdownTimeout = j.shutdownTimeout
	}
	if j.RateLimit != nil && !explicitFlags["rate-limit"] {
		cfg.RateLimit = *j.RateLimit
	}
	if j.RateLimitWindow != nil && !explicitFlags["rate-limit-window"] {
		cfg.RateLimitWindow = j.rateLimitWindow
	}
	if j.EnableHTTPS != nil && !explicitFlags["s"] {
		if *j.EnableHTTPS {
			cfg.EnableHTTPS = "true"
		} else {
			cfg.EnableHTTPS = ""
		}
	}
	if j.TLSCertFile != nil && !explicitFlags["tls-cert"] {
		cfg.TLSCertFile = *j.TLSCertFile
	}
	if j.TLSKeyFile != nil && !explicitFlags["tls-key"] {
		cfg.TLSKeyFile = *j.TLSKeyFile
	}
}
