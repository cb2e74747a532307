package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Storage  StorageConfig  `mapstructure:"storage"  validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Log      LogConfig      `mapstructure:"log"      validate:"required"`
}

// Storage backends accepted by StorageConfig.Backend.
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// StorageConfig selects which project store implementation the service is bound to.
type StorageConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=postgres memory"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url"                       validate:"omitempty,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"            validate:"gte=1"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"            validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=0"`
}

// LogConfig controls the slog handler built by logger.Setup.
type LogConfig struct {
	Level  string `mapstructure:"level"  validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}
