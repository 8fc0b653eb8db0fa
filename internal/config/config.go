package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Log          LogConfig          `yaml:"log"`
	Hifz         HifzConfig         `yaml:"hifz"`
	Gamification GamificationConfig `yaml:"gamification"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// HifzConfig holds memorization-scheduler parameters. Changing them changes
// review behavior for every learner, so validation is strict.
type HifzConfig struct {
	DefaultEaseFactor float64 `yaml:"default_ease_factor" env:"HIFZ_DEFAULT_EASE"   env-default:"2.5"`
	MinEaseFactor     float64 `yaml:"min_ease_factor"     env:"HIFZ_MIN_EASE"       env-default:"1.3"`
	MaxEaseFactor     float64 `yaml:"max_ease_factor"     env:"HIFZ_MAX_EASE"       env-default:"2.5"`
	MaxIntervalDays   int     `yaml:"max_interval_days"   env:"HIFZ_MAX_INTERVAL"   env-default:"365"`
	DueLimitDefault   int     `yaml:"due_limit_default"   env:"HIFZ_DUE_LIMIT"      env-default:"20"`
	DueLimitMax       int     `yaml:"due_limit_max"       env:"HIFZ_DUE_LIMIT_MAX"  env-default:"200"`
	MaxRangeSize      int     `yaml:"max_range_size"      env:"HIFZ_MAX_RANGE_SIZE" env-default:"286"`
}

// GamificationConfig holds settings for the XP/goal collaborator.
// An empty BaseURL disables reward delivery entirely.
type GamificationConfig struct {
	BaseURL string        `yaml:"base_url" env:"GAMIFICATION_BASE_URL"`
	Timeout time.Duration `yaml:"timeout"  env:"GAMIFICATION_TIMEOUT" env-default:"5s"`
}
