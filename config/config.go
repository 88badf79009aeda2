package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ledgersynth/model"

	"github.com/spf13/viper"
)

// ServerConfig HTTP server settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	// Mode is "debug" for human-readable logs or "release" for JSON logs.
	Mode            string        `mapstructure:"mode"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ContentConfig configures the generative content backend.
// An empty APIKey selects the deterministic fallback provider.
type ContentConfig struct {
	APIKey   string        `mapstructure:"api_key"`
	Model    string        `mapstructure:"model"`
	// Endpoint is the API base URL; the SDK appends the API version.
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// GeneratorConfig tunes synthetic data generation.
type GeneratorConfig struct {
	OpeningMin  float64       `mapstructure:"opening_min"`
	OpeningMax  float64       `mapstructure:"opening_max"`
	MaxHold     float64       `mapstructure:"max_hold"`
	HistoryDays int           `mapstructure:"history_days"`
	PaceEvery   int           `mapstructure:"pace_every"`
	PaceDelay   time.Duration `mapstructure:"pace_delay"`
	Workers     int           `mapstructure:"workers"`
}

// SeedConfig sizes the sample ledger created at startup.
type SeedConfig struct {
	Accounts               int `mapstructure:"accounts"`
	TransactionsPerAccount int `mapstructure:"transactions_per_account"`
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Content   ContentConfig   `mapstructure:"content"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Seed      SeedConfig      `mapstructure:"seed"`
}

func NewDefault() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			Mode:            "debug",
			ShutdownTimeout: 5 * time.Second,
		},
		Content: ContentConfig{
			Model:    "gemini-1.5-flash",
			Endpoint: "https://generativelanguage.googleapis.com/",
			Timeout:  10 * time.Second,
		},
		Generator: GeneratorConfig{
			OpeningMin:  1000,
			OpeningMax:  50000,
			MaxHold:     500,
			HistoryDays: 90,
			PaceEvery:   3,
			PaceDelay:   200 * time.Millisecond,
			Workers:     4,
		},
		Seed: SeedConfig{
			Accounts:               5,
			TransactionsPerAccount: 20,
		},
	}
}

// Load reads configuration from defaults, the optional file at path and
// LEDGERSYNTH_* environment variables, in increasing order of precedence.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, NewDefault())

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("LEDGERSYNTH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("content.api_key", "LEDGERSYNTH_CONTENT_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.mode", d.Server.Mode)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("content.api_key", d.Content.APIKey)
	v.SetDefault("content.model", d.Content.Model)
	v.SetDefault("content.endpoint", d.Content.Endpoint)
	v.SetDefault("content.timeout", d.Content.Timeout)
	v.SetDefault("generator.opening_min", d.Generator.OpeningMin)
	v.SetDefault("generator.opening_max", d.Generator.OpeningMax)
	v.SetDefault("generator.max_hold", d.Generator.MaxHold)
	v.SetDefault("generator.history_days", d.Generator.HistoryDays)
	v.SetDefault("generator.pace_every", d.Generator.PaceEvery)
	v.SetDefault("generator.pace_delay", d.Generator.PaceDelay)
	v.SetDefault("generator.workers", d.Generator.Workers)
	v.SetDefault("seed.accounts", d.Seed.Accounts)
	v.SetDefault("seed.transactions_per_account", d.Seed.TransactionsPerAccount)
}

// Validate rejects settings the generator cannot work with.
func (c *Config) Validate() error {
	g := c.Generator
	var errs []error
	if g.OpeningMin < 0 || g.OpeningMax < g.OpeningMin {
		errs = append(errs, fmt.Errorf("generator opening range [%v, %v] is invalid", g.OpeningMin, g.OpeningMax))
	}
	if g.MaxHold < 0 {
		errs = append(errs, errors.New("generator.max_hold must not be negative"))
	}
	if g.HistoryDays <= 0 {
		errs = append(errs, errors.New("generator.history_days must be positive"))
	}
	if g.PaceEvery <= 0 {
		errs = append(errs, errors.New("generator.pace_every must be positive"))
	}
	if g.Workers <= 0 {
		errs = append(errs, errors.New("generator.workers must be positive"))
	}
	if c.Seed.Accounts < 0 || c.Seed.Accounts > model.MaxAccountCount {
		errs = append(errs, fmt.Errorf("seed.accounts must be between 0 and %d", model.MaxAccountCount))
	}
	if c.Seed.TransactionsPerAccount < 0 || c.Seed.TransactionsPerAccount > model.MaxTransactionsPerAccount {
		errs = append(errs, fmt.Errorf("seed.transactions_per_account must be between 0 and %d", model.MaxTransactionsPerAccount))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d is out of range", c.Server.Port))
	}
	return errors.Join(errs...)
}
