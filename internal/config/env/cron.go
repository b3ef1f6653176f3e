package env

import (
	"fmt"

	"lucky_slots/internal/config"

	"github.com/caarlos0/env/v11"
	"github.com/robfig/cron/v3"
)

type cronConfig struct {
	PurgeSpec string `env:"SESSION_PURGE_SPEC" envDefault:"@every 1h"`
}

func NewCronConfig() (config.CronConfig, error) {
	cfg := &cronConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse cron env: %w", err)
	}

	// Проверяем расписание заранее, чтобы не упасть при старте планировщика
	if _, err := cron.ParseStandard(cfg.PurgeSpec); err != nil {
		return nil, fmt.Errorf("invalid session purge spec %q: %w", cfg.PurgeSpec, err)
	}

	return cfg, nil
}

func (cfg *cronConfig) SessionPurgeSpec() string {
	return cfg.PurgeSpec
}
