package env

import (
	"fmt"
	"net"
	"os"
	"slot_backend/internal/config"
	"strconv"
	"time"
)

const (
	httpHostEnvName     = "HTTP_HOST"
	httpPortEnvName     = "HTTP_PORT"
	portEnvName         = "PORT"
	shutdownTimeoutName = "HTTP_SHUTDOWN_TIMEOUT"

	defaultHost            = "0.0.0.0"
	defaultPort            = "3000"
	defaultShutdownTimeout = 10 * time.Second
)

type httpConfig struct {
	host            string
	port            string
	shutdownTimeout time.Duration
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	host := os.Getenv(httpHostEnvName)
	if len(host) == 0 {
		host = defaultHost
	}

	// PORT (хостинги) приоритетнее HTTP_PORT
	port := os.Getenv(portEnvName)
	if len(port) == 0 {
		port = os.Getenv(httpPortEnvName)
	}
	if len(port) == 0 {
		port = defaultPort
	}
	if p, err := strconv.Atoi(port); err != nil || p <= 0 || p > 65535 {
		return nil, fmt.Errorf("invalid http port %q", port)
	}

	shutdownTimeout := defaultShutdownTimeout
	if raw := os.Getenv(shutdownTimeoutName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
		}
		shutdownTimeout = parsed
	}

	return &httpConfig{
		host:            host,
		port:            port,
		shutdownTimeout: shutdownTimeout,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}

func (cfg *httpConfig) ShutdownTimeout() time.Duration {
	return cfg.shutdownTimeout
}
