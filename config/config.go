// Package config loads server settings from the environment. A .env file
// in the working directory is honored when present; every value has a
// usable default so a bare `taki-server` run just works.
package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TCPAddr string
	WSAddr  string

	// TurnLimit bounds a human turn; zero disables the countdown.
	TurnLimit time.Duration

	// BotDelay is the artificial thinking pause before a bot commits an
	// action.
	BotDelay time.Duration
}

var (
	loadOnce sync.Once
	loaded   Config
	loadErr  error
)

// Load reads the environment once and caches the result, so screens can
// re-ask for settings without re-parsing.
func Load() (Config, error) {
	loadOnce.Do(func() {
		loaded, loadErr = load()
	})
	return loaded, loadErr
}

func load() (Config, error) {
	// Missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	cfg := Config{
		TCPAddr:   envString("TAKI_TCP_ADDR", ":9998"),
		WSAddr:    envString("TAKI_WS_ADDR", ":9999"),
		TurnLimit: 40 * time.Second,
		BotDelay:  800 * time.Millisecond,
	}
	var err error
	if cfg.TurnLimit, err = envDuration("TAKI_TURN_LIMIT", cfg.TurnLimit); err != nil {
		return Config{}, err
	}
	if cfg.BotDelay, err = envDuration("TAKI_BOT_DELAY", cfg.BotDelay); err != nil {
		return Config{}, err
	}
	if cfg.TurnLimit < 0 || cfg.BotDelay < 0 {
		return Config{}, fmt.Errorf("durations must not be negative")
	}
	return cfg, nil
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s': %w", key, value, err)
	}
	return parsed, nil
}
