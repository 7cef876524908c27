package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Planning    PlanningConfig    `yaml:"planning"`
	AI          AIConfig          `yaml:"ai"`
	ImageSearch ImageSearchConfig `yaml:"image_search"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
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
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"tripplanner"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"24h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
}

// PlanningConfig holds trip-planning settings.
type PlanningConfig struct {
	MaxSchedulableHoursPerDay float64 `yaml:"max_schedulable_hours_per_day" env:"PLANNING_MAX_HOURS_PER_DAY" env-default:"10.0"`
	MaxSuggestions            int     `yaml:"max_suggestions"               env:"PLANNING_MAX_SUGGESTIONS"   env-default:"3"`
}

// AIConfig holds generative-content provider settings.
type AIConfig struct {
	APIKey            string        `yaml:"api_key"             env:"AI_API_KEY"             env-required:"true"`
	Model             string        `yaml:"model"               env:"AI_MODEL"               env-default:"gemini-2.0-flash"`
	BaseURL           string        `yaml:"base_url"            env:"AI_BASE_URL"            env-default:"https://generativelanguage.googleapis.com"`
	Timeout           time.Duration `yaml:"timeout"             env:"AI_TIMEOUT"             env-default:"45s"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"AI_REQUESTS_PER_MINUTE" env-default:"10"`
}

// ImageSearchConfig holds image-search provider settings.
type ImageSearchConfig struct {
	APIKey         string        `yaml:"api_key"          env:"IMAGE_SEARCH_API_KEY"  env-required:"true"`
	SearchEngineID string        `yaml:"search_engine_id" env:"IMAGE_SEARCH_CX"       env-required:"true"`
	BaseURL        string        `yaml:"base_url"         env:"IMAGE_SEARCH_BASE_URL" env-default:"https://www.googleapis.com/customsearch/v1"`
	Timeout        time.Duration `yaml:"timeout"          env:"IMAGE_SEARCH_TIMEOUT"  env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
