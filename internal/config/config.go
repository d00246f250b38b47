// Package config provides centralized configuration management for the
// loader. It reads settings from environment variables with sensible
// defaults and validates everything on startup to fail fast on
// misconfiguration.
package config

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Database DatabaseConfig
	Load     LoadConfig
	Logging  LoggingConfig
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string (required)
	URL string `env:"DATABASE_URL" envAlt:"DB_URL" required:"true"`

	// MaxConns is the maximum number of connections in the pool (default: 4)
	MaxConns int `env:"DB_MAX_CONNS" default:"4"`
}

// LoadConfig holds settings for one load run.
type LoadConfig struct {
	// Sheet is the worksheet name read from workbooks (default: Sheet1)
	Sheet string `env:"LOAD_SHEET" default:"Sheet1"`

	// Agency is the analyses_agency value stamped on every record
	Agency string `env:"LOAD_AGENCY" default:"NMBGMR"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
