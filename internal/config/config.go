package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	// timezone names must resolve in minimal containers too
	_ "time/tzdata"

	"github.com/2beens/gymenergy/internal/gymstats/energy"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	MetricsPort int    `toml:"metrics_port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost     string `toml:"postgres_host"`
	PostgresPort     string `toml:"postgres_port"`
	PostgresDBName   string `toml:"postgres_db_name"`
	PostgresUser     string `toml:"postgres_user"`
	PostgresMaxConns int32  `toml:"postgres_max_conns"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// gymstats
	Timezone               string   `toml:"timezone"`
	DefaultUnitSystem      string   `toml:"default_unit_system"`
	DefaultCalculationMode string   `toml:"default_calculation_mode"`
	SummaryCacheSizeBytes  int      `toml:"summary_cache_size_bytes"`
	SummaryCacheTTLSeconds int      `toml:"summary_cache_ttl_seconds"`
	MutationsPerMinute     int      `toml:"mutations_per_minute"`
	MaxBodyBytes           int64    `toml:"max_body_bytes"`
	AllowedOrigins         []string `toml:"allowed_origins"`

	// never read from the toml file
	Secrets Secrets `toml:"-"`
}

// Secrets come from the environment only.
type Secrets struct {
	PostgresPassword string `env:"GYMENERGY_POSTGRES_PASSWORD"`
	RedisPassword    string `env:"GYMENERGY_REDIS_PASS"`
	AdminSecretHash  string `env:"GYMENERGY_ADMIN_SECRET_HASH"`
	SentryDSN        string `env:"SENTRY_DSN"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED, default=false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
	OtelServiceName  string `env:"OTEL_SERVICE_NAME, default=gymenergy"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("env [%s] missing in config", env)
	}
	return cfg, nil
}

// Load reads the env section of the toml file at path, and the secrets from the process environment.
func Load(env, path string) (*Config, error) {
	return load(context.Background(), env, path, envconfig.OsLookuper())
}

func load(ctx context.Context, env, path string, lookuper envconfig.Lookuper) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode toml [%s]: %w", path, err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg.Secrets,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.MetricsPort == 0 {
		c.MetricsPort = 2112
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresDBName == "" {
		c.PostgresDBName = "gymenergy"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	if c.DefaultUnitSystem == "" {
		c.DefaultUnitSystem = string(energy.Metric)
	}
	if c.DefaultCalculationMode == "" {
		c.DefaultCalculationMode = string(energy.Standard)
	}
	if c.SummaryCacheTTLSeconds == 0 {
		c.SummaryCacheTTLSeconds = 300
	}
	if c.MutationsPerMinute == 0 {
		c.MutationsPerMinute = 60
	}
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port [%d]", ErrInvalidConfig, c.Port)
	}
	if c.MetricsPort == c.Port {
		return fmt.Errorf("%w: metrics port must differ from port %d", ErrInvalidConfig, c.Port)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("%w: timezone [%s]: %s", ErrInvalidConfig, c.Timezone, err)
	}
	if _, err := energy.ParseUnitSystem(c.DefaultUnitSystem); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if _, err := energy.ParseCalculationMode(c.DefaultCalculationMode); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if c.MutationsPerMinute < 0 {
		return fmt.Errorf("%w: mutations per minute [%d]", ErrInvalidConfig, c.MutationsPerMinute)
	}
	return nil
}

// Location is only safe to call on a validated config.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) SummaryCacheTTL() time.Duration {
	return time.Duration(c.SummaryCacheTTLSeconds) * time.Second
}
