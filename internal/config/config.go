// Package config loads bot settings from defaults, an optional YAML file, a
// .env file and JOKEBOT_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "JOKEBOT_"

// Storage drivers
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config is the complete bot configuration
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Bot      BotConfig      `koanf:"bot"`
	Telegram TelegramConfig `koanf:"telegram"`
	Storage  StorageConfig  `koanf:"storage"`
	Log      LogConfig      `koanf:"log"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Addr string `koanf:"addr"`
}

// BotConfig holds what the bot says about itself
type BotConfig struct {
	// ID is the process self-identifier; empty means a random UUID
	ID        string   `koanf:"id"`
	Homepages []string `koanf:"homepages"`
}

// TelegramConfig holds Bot API settings
type TelegramConfig struct {
	Token         string `koanf:"token"`
	WebhookURL    string `koanf:"webhook_url"`
	WebhookSecret string `koanf:"webhook_secret"`
}

// StorageConfig selects where jokes live
type StorageConfig struct {
	Driver   string `koanf:"driver"`
	Path     string `koanf:"path"`
	SeedFile string `koanf:"seed_file"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level       string `koanf:"level"`
	Development bool   `koanf:"development"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Bot: BotConfig{
			Homepages: []string{
				"http://t.me/TelegramJokeBot",
				"https://github.com/telegram-joke-bot/telegram-joke-bot",
			},
		},
		Storage: StorageConfig{
			Driver: DriverMemory,
			Path:   "jokes.db",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads configuration from the given YAML file and environment.
// A missing file or .env is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// JOKEBOT_TELEGRAM__WEBHOOK_SECRET -> telegram.webhook_secret
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration contains valid values
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("invalid storage.driver %q: must be one of memory, sqlite", c.Storage.Driver)
	}

	if c.Telegram.WebhookURL != "" && c.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required to register telegram.webhook_url")
	}

	return nil
}
