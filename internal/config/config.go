// Package config loads service configuration from defaults, an optional YAML file and the
// environment, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Environment is the deployment stage the process runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Config holds all configuration for the profile service.
type Config struct {
	Environment Environment `yaml:"environment" validate:"oneof=development staging production"`
	ServiceName string      `yaml:"service_name" validate:"required"`
	Version     string      `yaml:"version" validate:"required"`
	LogLevel    string      `yaml:"log_level" validate:"oneof=debug info warn error"`

	Server         Server         `yaml:"server"`
	Database       Database       `yaml:"database"`
	Storage        Storage        `yaml:"storage"`
	Services       Services       `yaml:"services"`
	Auth           Auth           `yaml:"auth"`
	Verification   Verification   `yaml:"verification"`
	Events         Events         `yaml:"events"`
	Metrics        Metrics        `yaml:"metrics"`
	Tracing        Tracing        `yaml:"tracing"`
	CircuitBreaker CircuitBreaker `yaml:"circuit_breaker"`
	Idempotency    Idempotency    `yaml:"idempotency"`

	// LoadedFrom lists the sources applied, lowest precedence first.
	LoadedFrom []string `yaml:"-"`
}

type Server struct {
	Port            int           `yaml:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
}

type Database struct {
	TableName  string `yaml:"table_name" validate:"required"`
	OwnerIndex string `yaml:"owner_index" validate:"required"`
	Region     string `yaml:"region"`
}

type Storage struct {
	Bucket       string        `yaml:"bucket" validate:"required"`
	UploadURLTTL time.Duration `yaml:"upload_url_ttl" validate:"gt=0"`
}

// Services are the outbound HTTP dependencies used by the enrichment stream.
type Services struct {
	ShortcodeURL string        `yaml:"shortcode_url" validate:"omitempty,url"`
	ReviewURL    string        `yaml:"review_url" validate:"omitempty,url"`
	HTTPTimeout  time.Duration `yaml:"http_timeout" validate:"gt=0"`
}

type Auth struct {
	TokenEndpoint string `yaml:"token_endpoint" validate:"omitempty,url"`
	ClientID      string `yaml:"client_id"`
	GrantType     string `yaml:"grant_type"`
	RedirectURL   string `yaml:"redirect_url"`
	JWTSecret     string `yaml:"jwt_secret"`
	JWTIssuer     string `yaml:"jwt_issuer"`
}

type Verification struct {
	CodeTTL    time.Duration `yaml:"code_ttl" validate:"gt=0"`
	CodeDigits int           `yaml:"code_digits" validate:"min=4,max=10"`
}

type Events struct {
	EventBusName string `yaml:"event_bus_name"`
	Source       string `yaml:"source" validate:"required"`
}

type Metrics struct {
	Namespace           string `yaml:"namespace" validate:"required"`
	CloudWatchNamespace string `yaml:"cloudwatch_namespace"`
}

type Tracing struct {
	Enabled    bool    `yaml:"enabled"`
	Endpoint   string  `yaml:"endpoint"`
	SampleRate float64 `yaml:"sample_rate" validate:"min=0,max=1"`
}

type CircuitBreaker struct {
	MaxRequests  uint32        `yaml:"max_requests"`
	Interval     time.Duration `yaml:"interval"`
	Timeout      time.Duration `yaml:"timeout"`
	FailureRatio float64       `yaml:"failure_ratio" validate:"gt=0,lte=1"`
	MinRequests  uint32        `yaml:"min_requests"`
}

type Idempotency struct {
	TTL time.Duration `yaml:"ttl" validate:"gt=0"`
	// Lease is how long a claim blocks other invocations; at least the stream function timeout.
	Lease time.Duration `yaml:"lease" validate:"gt=0,ltefield=TTL"`
}

// Validate checks the configuration for missing or out-of-range values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Tracing.Enabled && c.Tracing.Endpoint == "" {
		return fmt.Errorf("invalid configuration: tracing enabled without endpoint")
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == Development
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// LoadConfig loads configuration from CONFIG_FILE (when set) and the environment.
func LoadConfig() (*Config, error) {
	return NewLoader(os.Getenv("CONFIG_FILE")).Load()
}

func getEnvironment() Environment {
	switch strings.ToLower(getEnv("ENVIRONMENT", string(Development))) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	default:
		return Development
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return fallback
}
