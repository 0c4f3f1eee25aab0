package config

// Deployment environments selecting the CORS origin list.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// ServerConfig contains HTTP listener settings.
type ServerConfig struct {
	Host            string `mapstructure:"host" json:"host"`
	Port            int    `mapstructure:"port" json:"port"`
	ShutdownTimeout string `mapstructure:"shutdown_timeout" json:"shutdown_timeout"` // e.g. "10s"
	Compression     bool   `mapstructure:"compression" json:"compression"`
}

// DatabaseConfig contains SQLite settings.
type DatabaseConfig struct {
	Path             string `mapstructure:"path" json:"path"`
	MaxOpenConns     int    `mapstructure:"max_open_conns" json:"max_open_conns"`
	MigrateOnStartup bool   `mapstructure:"migrate_on_startup" json:"migrate_on_startup"`
	SeedFile         string `mapstructure:"seed_file" json:"seed_file,omitempty"`
}

// SecurityConfig contains secrets.
//
// Note: RatingIPHashKey is a secret and is never returned by API endpoints.
type SecurityConfig struct {
	RatingIPHashKey      string `mapstructure:"rating_ip_hash_key" json:"-"`
	MinIPHashKeyLength   int    `mapstructure:"min_ip_hash_key_length" json:"min_ip_hash_key_length"`
	AllowInsecureHashKey bool   `mapstructure:"allow_insecure_hash_key" json:"allow_insecure_hash_key"`
}

// RatingsConfig bounds rating values and submission rate.
type RatingsConfig struct {
	MinRating         int `mapstructure:"min_rating" json:"min_rating"`
	MaxRating         int `mapstructure:"max_rating" json:"max_rating"`
	RequestsPerMinute int `mapstructure:"requests_per_minute" json:"requests_per_minute"`
}

// AdminConfig controls the admin list endpoints.
//
// Enabling admin requires APIKey unless AllowUnauthenticated is set.
type AdminConfig struct {
	Enabled              bool   `mapstructure:"enabled" json:"enabled"`
	APIKey               string `mapstructure:"api_key" json:"-"`
	AllowUnauthenticated bool   `mapstructure:"allow_unauthenticated" json:"allow_unauthenticated"`
	PageSize             int    `mapstructure:"page_size" json:"page_size"`
	MinPageSize          int    `mapstructure:"min_page_size" json:"min_page_size"`
	MaxPageSize          int    `mapstructure:"max_page_size" json:"max_page_size"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `mapstructure:"level" json:"level"`
	Structured       bool              `mapstructure:"structured" json:"structured"`
	StructuredFormat string            `mapstructure:"structured_format" json:"structured_format"`
	IncludePID       bool              `mapstructure:"include_pid" json:"include_pid"`
	ExtraFields      map[string]string `mapstructure:"extra_fields" json:"extra_fields,omitempty"`
}

// FrontendConfig points at an optional directory of static files served
// at the root path.
type FrontendConfig struct {
	Dir string `mapstructure:"dir" json:"dir"`
}

// RosterConfig configures the race and class endpoints.
type RosterConfig struct {
	// ClassMapFile replaces the built-in race to class table when set.
	ClassMapFile string `mapstructure:"class_map_file" json:"class_map_file,omitempty"`
}

// CORSConfig lists the browser origins allowed to call the API. The list in
// use depends on Environment ("development" or "production").
type CORSConfig struct {
	Environment        string   `mapstructure:"environment" json:"environment"`
	DevelopmentOrigins []string `mapstructure:"development_origins" json:"development_origins"`
	ProductionOrigins  []string `mapstructure:"production_origins" json:"production_origins"`
}

// Origins returns the origin list for the configured environment.
func (c CORSConfig) Origins() []string {
	if c.Environment == EnvProduction {
		return c.ProductionOrigins
	}
	return c.DevelopmentOrigins
}

// MetricsConfig toggles the /metrics endpoint.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" json:"enabled"`
}

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" json:"server"`
	Database DatabaseConfig `mapstructure:"database" json:"database"`
	Security SecurityConfig `mapstructure:"security" json:"security"`
	Ratings  RatingsConfig  `mapstructure:"ratings" json:"ratings"`
	Admin    AdminConfig    `mapstructure:"admin" json:"admin"`
	Logging  LoggingConfig  `mapstructure:"logging" json:"logging"`
	Frontend FrontendConfig `mapstructure:"frontend" json:"frontend"`
	Roster   RosterConfig   `mapstructure:"roster" json:"roster"`
	Metrics  MetricsConfig  `mapstructure:"metrics" json:"metrics"`
	CORS     CORSConfig     `mapstructure:"cors" json:"cors"`
}
