package config

import (
	"fmt"
	"strings"
	"time"

	pkgconfig "github.com/TVAexe/ar-fe-admin/pkg/config"
)

// Config holds all configuration for the admin dashboard service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPPort    int    `env:"ADMIN_HTTP_PORT" envDefault:"8080"`

	// Upstream APIs
	BackendAPIURL        string        `env:"BACKEND_API_URL" envDefault:"http://localhost:8081"`
	StoragePublicBaseURL string        `env:"STORAGE_PUBLIC_BASE_URL" envDefault:"http://localhost:9000/assets"`
	UpstreamTimeout      time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"15s"`
	UpstreamMaxRetries   int           `env:"UPSTREAM_MAX_RETRIES" envDefault:"3"`

	// Redis response cache
	RedisHost     string        `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort     int           `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string        `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"30s"`

	// Kafka event stream
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`

	// CORS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Rate limiting
	RateLimitRPS   int `env:"RATE_LIMIT_RPS" envDefault:"100"`
	RateLimitBurst int `env:"RATE_LIMIT_BURST" envDefault:"200"`

	// Pprof debug endpoints are only reachable from these CIDRs.
	PprofAllowedCIDRs []string `env:"PPROF_ALLOWED_CIDRS" envDefault:"127.0.0.1/32" envSeparator:","`

	// Tracing
	OTELEndpoint      string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	TracingSampleRate float64 `env:"TRACING_SAMPLE_RATE" envDefault:"1.0"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load admin config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if !strings.HasPrefix(c.BackendAPIURL, "http://") && !strings.HasPrefix(c.BackendAPIURL, "https://") {
		return fmt.Errorf("BACKEND_API_URL must be an absolute http(s) URL, got %q", c.BackendAPIURL)
	}
	if !strings.HasPrefix(c.StoragePublicBaseURL, "http://") && !strings.HasPrefix(c.StoragePublicBaseURL, "https://") {
		return fmt.Errorf("STORAGE_PUBLIC_BASE_URL must be an absolute http(s) URL, got %q", c.StoragePublicBaseURL)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got %s", c.CacheTTL)
	}
	return nil
}
