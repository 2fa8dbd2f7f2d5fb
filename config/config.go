package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"inkwell/constants"
)

// Config holds everything the server needs to run. Values come from
// defaults, an optional config.yaml in the working directory, and
// INKWELL_* environment variables (in increasing priority).
type Config struct {
	Env  string `mapstructure:"env"`
	Port int    `mapstructure:"port"`

	Database struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"database"`

	Backup struct {
		Enabled  bool          `mapstructure:"enabled"`
		Dir      string        `mapstructure:"dir"`
		Interval time.Duration `mapstructure:"interval"`
		Keep     int           `mapstructure:"keep"`
	} `mapstructure:"backup"`

	RateLimit struct {
		Requests int           `mapstructure:"requests"`
		Window   time.Duration `mapstructure:"window"`
	} `mapstructure:"rate_limit"`

	Cache struct {
		TTL             time.Duration `mapstructure:"ttl"`
		CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	} `mapstructure:"cache"`

	Pagination struct {
		DefaultLimit int `mapstructure:"default_limit"`
		MaxLimit     int `mapstructure:"max_limit"`
	} `mapstructure:"pagination"`

	Auth struct {
		// Bcrypt hash of the admin bearer token. Empty disables the
		// auth gate (development only).
		TokenHash string `mapstructure:"token_hash"`
	} `mapstructure:"auth"`

	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("env", "development")
	v.SetDefault("port", 3000)
	v.SetDefault("database.path", "data/inkwell.sqlite")
	v.SetDefault("backup.enabled", true)
	v.SetDefault("backup.dir", "data/backups")
	v.SetDefault("backup.interval", 24*time.Hour)
	v.SetDefault("backup.keep", constants.BACKUPS_TO_KEEP)
	v.SetDefault("rate_limit.requests", 100)
	v.SetDefault("rate_limit.window", time.Minute)
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("cache.cleanup_interval", 10*time.Minute)
	v.SetDefault("pagination.default_limit", constants.DEFAULT_PAGE_SIZE)
	v.SetDefault("pagination.max_limit", constants.MAX_PAGE_SIZE)
	v.SetDefault("auth.token_hash", "")
	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetEnvPrefix("INKWELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.IsProduction() && cfg.Auth.TokenHash == "" {
		return nil, errors.New("auth.token_hash (INKWELL_AUTH_TOKEN_HASH) is required in production")
	}

	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
