package env

import (
	"fmt"

	"lucky_slots/internal/config"

	"github.com/caarlos0/env/v11"
)

type pgConfig struct {
	Dsn string `env:"PG_DSN,required,notEmpty"`
}

func NewPGConfig() (config.PGConfig, error) {
	cfg := &pgConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse pg env: %w", err)
	}

	return cfg, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.Dsn
}
