package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// It is read once at process startup.
type Config struct {
	// Server
	Port               int    `mapstructure:"PORT"`
	Env                string `mapstructure:"APP_ENV"` // development | production | test
	AppName            string `mapstructure:"APP_NAME"`
	RateLimitPerMinute int    `mapstructure:"RATE_LIMIT_PER_MINUTE"`
	TrustedProxies     string `mapstructure:"TRUSTED_PROXIES"`      // comma-separated IPs/CIDRs; empty trusts none
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"` // comma-separated; "*" allows any

	// Database
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	DBDriver       string `mapstructure:"DB_DRIVER"` // postgres | sqlite
	DBMaxOpenConns int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns int    `mapstructure:"DB_MAX_IDLE_CONNS"`

	// General
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	ImagesDirectory string `mapstructure:"IMAGES_DIRECTORY"`
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool { return strings.EqualFold(c.Env, "production") }

// TrustedProxyList returns the proxies whose X-Forwarded-For is honoured.
// nil means the client IP is always the TCP peer.
func (c *Config) TrustedProxyList() []string { return splitList(c.TrustedProxies) }

// AllowedOrigins returns the CORS origin allow-list.
func (c *Config) AllowedOrigins() []string { return splitList(c.CORSAllowedOrigins) }

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	// ENVIRONMENT is accepted as an older spelling of APP_ENV
	_ = v.BindEnv("APP_ENV", "APP_ENV", "ENVIRONMENT")

	v.SetDefault("PORT", 8000)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "Invoicing Microservice")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 1000)
	v.SetDefault("TRUSTED_PROXIES", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DATABASE_URL", "postgres://user:password@db:5432/invoicedb?sslmode=disable")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("IMAGES_DIRECTORY", "app/images/")

	// Optional .env file for local development; a missing file is not an error
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	return cfg, nil
}
