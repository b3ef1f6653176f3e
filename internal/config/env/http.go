package env

import (
	"fmt"
	"time"

	"lucky_slots/internal/config"

	"github.com/caarlos0/env/v11"
)

type httpConfig struct {
	Host            string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" envDefault:"8080"`
	ShutdownTimeOut time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	cfg := &httpConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse http env: %w", err)
	}

	return cfg, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.Host + ":" + cfg.Port
}

func (cfg *httpConfig) ShutdownTimeout() time.Duration {
	return cfg.ShutdownTimeOut
}
