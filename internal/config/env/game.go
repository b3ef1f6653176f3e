package env

import (
	"errors"
	"fmt"
	"os"
	"time"

	"lucky_slots/internal/config"
	"lucky_slots/internal/ledger"
	"lucky_slots/internal/model"
	"lucky_slots/internal/wager"

	"gopkg.in/yaml.v3"
)

const (
	defaultCurrency     = "KSH"
	defaultWelcomeBonus = 500
	defaultRevealDelay  = 2 * time.Second
	defaultPaymentURL   = "https://store.pesapal.com/moneyflow"
	defaultStatsWindow  = 500
)

// gameFile - раздел game файла config.yaml. Незаданные поля берутся из значений по умолчанию
type gameFile struct {
	Game struct {
		Currency       string         `yaml:"currency"`
		WelcomeBonus   *int           `yaml:"welcome_bonus"`
		RevealDelay    time.Duration  `yaml:"reveal_delay"`
		PaymentURL     string         `yaml:"payment_url"`
		StatsWindow    int            `yaml:"stats_window"`
		Symbols        []string       `yaml:"symbols"`
		Stakes         []int          `yaml:"stakes"`
		Jackpots       map[string]int `yaml:"jackpots"`
		PairPayout     *int           `yaml:"pair_payout"`
		BonusFreeSpins *int           `yaml:"bonus_free_spins"`
		Limits         struct {
			MinTopUp               int   `yaml:"min_top_up"`
			MinWithdrawal          int   `yaml:"min_withdrawal"`
			TopUpQuickAmounts      []int `yaml:"top_up_quick_amounts"`
			WithdrawalQuickAmounts []int `yaml:"withdrawal_quick_amounts"`
		} `yaml:"limits"`
	} `yaml:"game"`
}

type gameConfig struct {
	rules        wager.Rules
	limits       ledger.Limits
	welcomeBonus int
	currency     string
	revealDelay  time.Duration
	paymentURL   string
	statsWindow  int
}

// NewDefaultGameConfig возвращает конфигурацию слота без файла
func NewDefaultGameConfig() config.GameConfig {
	return &gameConfig{
		rules:        wager.DefaultRules(),
		limits:       ledger.DefaultLimits(),
		welcomeBonus: defaultWelcomeBonus,
		currency:     defaultCurrency,
		revealDelay:  defaultRevealDelay,
		paymentURL:   defaultPaymentURL,
		statsWindow:  defaultStatsWindow,
	}
}

// NewGameConfigFromYAML читает правила слота из yaml файла.
// Если файла нет, используются значения по умолчанию
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewDefaultGameConfig(), nil
		}
		return nil, fmt.Errorf("read game config: %w", err)
	}

	return parseGameConfig(data)
}

func parseGameConfig(data []byte) (config.GameConfig, error) {
	var file gameFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal game config: %w", err)
	}

	cfg := NewDefaultGameConfig().(*gameConfig)
	g := file.Game

	if g.Currency != "" {
		cfg.currency = g.Currency
	}
	if g.WelcomeBonus != nil {
		cfg.welcomeBonus = *g.WelcomeBonus
	}
	if g.RevealDelay != 0 {
		cfg.revealDelay = g.RevealDelay
	}
	if g.PaymentURL != "" {
		cfg.paymentURL = g.PaymentURL
	}
	if g.StatsWindow != 0 {
		cfg.statsWindow = g.StatsWindow
	}

	// Правила слота
	if len(g.Symbols) > 0 {
		cfg.rules.Symbols = make([]model.Symbol, len(g.Symbols))
		for i, s := range g.Symbols {
			cfg.rules.Symbols[i] = model.Symbol(s)
		}
	}
	if len(g.Stakes) > 0 {
		cfg.rules.Stakes = g.Stakes
	}
	if len(g.Jackpots) > 0 {
		cfg.rules.Jackpots = make(map[model.Symbol]int, len(g.Jackpots))
		for s, payout := range g.Jackpots {
			cfg.rules.Jackpots[model.Symbol(s)] = payout
		}
	}
	if g.PairPayout != nil {
		cfg.rules.PairPayout = *g.PairPayout
	}
	if g.BonusFreeSpins != nil {
		cfg.rules.BonusFreeSpins = *g.BonusFreeSpins
	}

	// Лимиты пополнения и вывода
	if g.Limits.MinTopUp != 0 {
		cfg.limits.MinTopUp = g.Limits.MinTopUp
	}
	if g.Limits.MinWithdrawal != 0 {
		cfg.limits.MinWithdrawal = g.Limits.MinWithdrawal
	}
	if len(g.Limits.TopUpQuickAmounts) > 0 {
		cfg.limits.TopUpQuickAmounts = g.Limits.TopUpQuickAmounts
	}
	if len(g.Limits.WithdrawalQuickAmounts) > 0 {
		cfg.limits.WithdrawQuickAmounts = g.Limits.WithdrawalQuickAmounts
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *gameConfig) validate() error {
	if err := cfg.rules.Validate(); err != nil {
		return err
	}
	if err := cfg.limits.Validate(); err != nil {
		return fmt.Errorf("invalid limits: %w", err)
	}
	if cfg.welcomeBonus < 0 {
		return fmt.Errorf("welcome bonus must not be negative, got %d", cfg.welcomeBonus)
	}
	if cfg.revealDelay < 0 {
		return fmt.Errorf("reveal delay must not be negative, got %s", cfg.revealDelay)
	}
	if cfg.statsWindow <= 0 {
		return fmt.Errorf("stats window must be positive, got %d", cfg.statsWindow)
	}
	return nil
}

func (cfg *gameConfig) Rules() wager.Rules {
	return cfg.rules
}

func (cfg *gameConfig) Limits() ledger.Limits {
	return cfg.limits
}

func (cfg *gameConfig) WelcomeBonus() int {
	return cfg.welcomeBonus
}

func (cfg *gameConfig) Currency() string {
	return cfg.currency
}

func (cfg *gameConfig) RevealDelay() time.Duration {
	return cfg.revealDelay
}

func (cfg *gameConfig) PaymentURL() string {
	return cfg.paymentURL
}

func (cfg *gameConfig) StatsWindow() int {
	return cfg.statsWindow
}
