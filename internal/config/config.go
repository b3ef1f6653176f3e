package config

import (
	"time"

	"lucky_slots/internal/ledger"
	"lucky_slots/internal/wager"

	"github.com/joho/godotenv"
)

// Load подгружает переменные окружения из .env файла
func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type GameConfig interface {
	Rules() wager.Rules
	Limits() ledger.Limits
	WelcomeBonus() int
	Currency() string
	RevealDelay() time.Duration
	PaymentURL() string
	StatsWindow() int
}

type HTTPConfig interface {
	Address() string
	ShutdownTimeout() time.Duration
}

type PGConfig interface {
	DSN() string
}

type RedisConfig interface {
	Enabled() bool
	Address() string
	Password() string
	DB() int
	LockTTL() time.Duration
}

type LogConfig interface {
	Level() string
	Development() bool
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type CronConfig interface {
	SessionPurgeSpec() string
}
