package env

import (
	"fmt"
	"time"

	"lucky_slots/internal/config"

	"github.com/caarlos0/env/v11"
)

type redisConfig struct {
	Addr      string        `env:"REDIS_ADDR"`
	Pass      string        `env:"REDIS_PASSWORD"`
	Database  int           `env:"REDIS_DB" envDefault:"0"`
	SpinLockT time.Duration `env:"REDIS_LOCK_TTL" envDefault:"10s"`
}

// NewRedisConfig читает настройки Redis. Пустой REDIS_ADDR означает работу без Redis
func NewRedisConfig() (config.RedisConfig, error) {
	cfg := &redisConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse redis env: %w", err)
	}

	if cfg.SpinLockT <= 0 {
		return nil, fmt.Errorf("redis lock ttl must be positive, got %s", cfg.SpinLockT)
	}

	return cfg, nil
}

func (cfg *redisConfig) Enabled() bool {
	return cfg.Addr != ""
}

func (cfg *redisConfig) Address() string {
	return cfg.Addr
}

func (cfg *redisConfig) Password() string {
	return cfg.Pass
}

func (cfg *redisConfig) DB() int {
	return cfg.Database
}

func (cfg *redisConfig) LockTTL() time.Duration {
	return cfg.SpinLockT
}
