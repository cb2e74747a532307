package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. RAINALERT_DATABASE_URL or RAINALERT_STORAGE_BACKEND.
const EnvPrefix = "RAINALERT"

// ErrMissingDatabaseURL is returned when the postgres backend is selected without a database URL.
var ErrMissingDatabaseURL = errors.New("database.url is required for the postgres backend")

// Load reads configuration from defaults, an optional config.yaml in the
// working directory, and RAINALERT_* environment variables, in increasing
// order of precedence. The result is validated before it is returned.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks struct tags and the rules that span more than one section.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Storage.Backend == BackendPostgres && cfg.Database.URL == "" {
		return fmt.Errorf("config validation failed: %w", ErrMissingDatabaseURL)
	}

	return nil
}

// setDefaults registers every key so AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", BackendPostgres)
	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime_minutes", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
