// Package config loads and validates eqrng settings.
//
// Settings come from built-in defaults, an optional YAML file and
// EQRNG_-prefixed environment variables, in increasing order of precedence.
// Nested keys map to variables by replacing dots with underscores, so
// database.path is EQRNG_DATABASE_PATH.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "EQRNG"

// ConfigPathEnv names the variable consulted by ResolveConfigPath.
const ConfigPathEnv = "EQRNG_CONFIG"

// ResolveConfigPath returns the flag value if set, otherwise EQRNG_CONFIG.
func ResolveConfigPath(flagValue string) string {
	if p := strings.TrimSpace(flagValue); p != "" {
		return p
	}
	return strings.TrimSpace(os.Getenv(ConfigPathEnv))
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.compression", true)

	v.SetDefault("database.path", "data/zones.db")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.migrate_on_startup", true)
	v.SetDefault("database.seed_file", "")

	v.SetDefault("security.rating_ip_hash_key", "")
	v.SetDefault("security.min_ip_hash_key_length", 32)
	v.SetDefault("security.allow_insecure_hash_key", false)

	v.SetDefault("ratings.min_rating", 1)
	v.SetDefault("ratings.max_rating", 5)
	v.SetDefault("ratings.requests_per_minute", 5)

	v.SetDefault("admin.enabled", false)
	v.SetDefault("admin.api_key", "")
	v.SetDefault("admin.allow_unauthenticated", false)
	v.SetDefault("admin.page_size", 20)
	v.SetDefault("admin.min_page_size", 5)
	v.SetDefault("admin.max_page_size", 100)

	v.SetDefault("logging.level", "INFO")
	v.SetDefault("logging.structured", false)
	v.SetDefault("logging.structured_format", "json")
	v.SetDefault("logging.include_pid", false)

	v.SetDefault("frontend.dir", "")
	v.SetDefault("roster.class_map_file", "")
	v.SetDefault("metrics.enabled", true)

	v.SetDefault("cors.environment", EnvDevelopment)
	v.SetDefault("cors.development_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	v.SetDefault("cors.production_origins", []string{})
}

// Load reads configuration from path (optional) and the environment, then
// validates it. An empty path loads defaults plus environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return errors.New("server.port must be 1..65535")
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.ShutdownTimeout == "" {
		cfg.Server.ShutdownTimeout = "10s"
	}
	if _, err := time.ParseDuration(cfg.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("server.shutdown_timeout: %w", err)
	}

	if strings.TrimSpace(cfg.Database.Path) == "" {
		return errors.New("database.path is required")
	}
	if cfg.Database.MaxOpenConns <= 0 {
		cfg.Database.MaxOpenConns = 10
	}

	// AllowInsecureHashKey lifts the length check for local development.
	if len(cfg.Security.RatingIPHashKey) < cfg.Security.MinIPHashKeyLength && !cfg.Security.AllowInsecureHashKey {
		return fmt.Errorf("security.rating_ip_hash_key must be at least %d characters long",
			cfg.Security.MinIPHashKeyLength)
	}

	if cfg.Ratings.MinRating >= cfg.Ratings.MaxRating {
		return fmt.Errorf("invalid rating range: min_rating (%d) >= max_rating (%d)",
			cfg.Ratings.MinRating, cfg.Ratings.MaxRating)
	}
	if cfg.Ratings.RequestsPerMinute <= 0 {
		cfg.Ratings.RequestsPerMinute = 5
	}

	if cfg.Admin.Enabled && cfg.Admin.APIKey == "" && !cfg.Admin.AllowUnauthenticated {
		return errors.New("admin.api_key is required when admin.enabled is true " +
			"(set admin.allow_unauthenticated to serve admin without a key)")
	}
	if cfg.Admin.MinPageSize <= 0 {
		cfg.Admin.MinPageSize = 5
	}
	if cfg.Admin.MinPageSize >= cfg.Admin.MaxPageSize {
		return fmt.Errorf("invalid admin pagination: min_page_size (%d) >= max_page_size (%d)",
			cfg.Admin.MinPageSize, cfg.Admin.MaxPageSize)
	}
	if cfg.Admin.PageSize < cfg.Admin.MinPageSize || cfg.Admin.PageSize > cfg.Admin.MaxPageSize {
		return fmt.Errorf("admin.page_size (%d) must be between %d and %d",
			cfg.Admin.PageSize, cfg.Admin.MinPageSize, cfg.Admin.MaxPageSize)
	}

	cfg.CORS.Environment = strings.ToLower(strings.TrimSpace(cfg.CORS.Environment))
	switch cfg.CORS.Environment {
	case "":
		cfg.CORS.Environment = EnvDevelopment
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("cors.environment must be %q or %q, got %q",
			EnvDevelopment, EnvProduction, cfg.CORS.Environment)
	}

	// Normalize logging
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	return nil
}

// ShutdownTimeout returns the parsed graceful shutdown deadline.
func (cfg *Config) ShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(cfg.Server.ShutdownTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}
