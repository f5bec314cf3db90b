package config

import (
	"fmt"
	"strings"

	"github.com/api-sage/binary-finance/src/internal/domain"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	PasswordStoragePlain  = "plain"
	PasswordStorageBcrypt = "bcrypt"
)

type Config struct {
	ExportDir       string `env:"BANK_EXPORT_DIR" env-default:"."`
	PasswordStorage string `env:"BANK_PASSWORD_STORAGE" env-default:"plain"`
	DisplayCurrency string `env:"BANK_DISPLAY_CURRENCY" env-default:"USD"`
	LogLevel        string `env:"BANK_LOG_LEVEL" env-default:"info"`
	LogOutput       string `env:"BANK_LOG_OUTPUT" env-default:"binary-finance.log"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment variables: %w", err)
	}

	cfg.ExportDir = orDefault(cfg.ExportDir, ".")

	cfg.PasswordStorage = strings.ToLower(orDefault(cfg.PasswordStorage, PasswordStoragePlain))
	switch cfg.PasswordStorage {
	case PasswordStoragePlain, PasswordStorageBcrypt:
	default:
		return Config{}, fmt.Errorf("BANK_PASSWORD_STORAGE must be %q or %q, got %q", PasswordStoragePlain, PasswordStorageBcrypt, cfg.PasswordStorage)
	}

	currency, err := domain.ParseCurrency(orDefault(cfg.DisplayCurrency, domain.USD.String()))
	if err != nil {
		return Config{}, fmt.Errorf("BANK_DISPLAY_CURRENCY: %w", err)
	}
	cfg.DisplayCurrency = currency.String()

	cfg.LogLevel = strings.ToLower(orDefault(cfg.LogLevel, "info"))
	cfg.LogOutput = orDefault(cfg.LogOutput, "binary-finance.log")

	return cfg, nil
}

// cleanenv keeps an explicitly empty variable empty; treat it as unset.
func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}
