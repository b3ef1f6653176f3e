package env

import (
	"fmt"

	"lucky_slots/internal/config"

	"github.com/caarlos0/env/v11"
)

type logConfig struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`
}

func NewLogConfig() (config.LogConfig, error) {
	cfg := &logConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse log env: %w", err)
	}

	return cfg, nil
}

func (cfg *logConfig) Level() string {
	return cfg.LogLevel
}

func (cfg *logConfig) Development() bool {
	return cfg.AppEnv == "development" || cfg.AppEnv == "dev"
}
