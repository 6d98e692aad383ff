package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Loader layers configuration sources:
//  1. defaults
//  2. the YAML file at path, if any
//  3. environment variables
type Loader struct {
	path    string
	sources []string
}

// NewLoader creates a loader. An empty path skips the file layer.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Path is the YAML file the loader reads, possibly empty.
func (l *Loader) Path() string {
	return l.path
}

// Load builds and validates a Config.
func (l *Loader) Load() (*Config, error) {
	l.sources = []string{"defaults"}
	cfg := defaultConfig(getEnvironment())

	if l.path != "" {
		if err := l.loadFile(cfg); err != nil {
			return nil, err
		}
	}

	loadEnvironmentVariables(cfg)
	l.sources = append(l.sources, "environment")
	cfg.LoadedFrom = l.sources

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) loadFile(cfg *Config) error {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", l.path, err)
	}
	l.sources = append(l.sources, l.path)
	return nil
}

func loadEnvironmentVariables(cfg *Config) {
	if os.Getenv("ENVIRONMENT") != "" {
		cfg.Environment = getEnvironment()
	}
	cfg.ServiceName = getEnv("SERVICE_NAME", cfg.ServiceName)
	cfg.Version = getEnv("SERVICE_VERSION", cfg.Version)
	cfg.LogLevel = strings.ToLower(getEnv("LOG_LEVEL", cfg.LogLevel))

	cfg.Server.Port = getEnvInt("PORT", cfg.Server.Port)
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.Server.AllowedOrigins = strings.Split(origins, ",")
	}

	cfg.Database.TableName = getEnv("PROFILE_TABLE", cfg.Database.TableName)
	cfg.Database.OwnerIndex = getEnv("PROFILE_INDEX", cfg.Database.OwnerIndex)
	cfg.Database.Region = getEnv("AWS_REGION", cfg.Database.Region)

	cfg.Storage.Bucket = getEnv("PROFILE_BUCKET", cfg.Storage.Bucket)
	cfg.Storage.UploadURLTTL = getEnvDuration("UPLOAD_URL_TTL", cfg.Storage.UploadURLTTL)

	cfg.Services.ShortcodeURL = getEnv("SHORTCODE_API_URL", cfg.Services.ShortcodeURL)
	cfg.Services.ReviewURL = getEnv("REVIEW_API_URL", cfg.Services.ReviewURL)
	cfg.Services.HTTPTimeout = getEnvDuration("HTTP_TIMEOUT", cfg.Services.HTTPTimeout)

	cfg.Auth.TokenEndpoint = getEnv("AUTH_END_POINT", cfg.Auth.TokenEndpoint)
	cfg.Auth.ClientID = getEnv("AUTH_CLIENT_ID", cfg.Auth.ClientID)
	cfg.Auth.GrantType = getEnv("AUTH_GRANT_TYPE", cfg.Auth.GrantType)
	cfg.Auth.RedirectURL = getEnv("AUTH_REDIRECT_URL", cfg.Auth.RedirectURL)
	cfg.Auth.JWTSecret = getEnv("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Auth.JWTIssuer = getEnv("JWT_ISSUER", cfg.Auth.JWTIssuer)

	cfg.Verification.CodeTTL = getEnvDuration("CODE_TTL", cfg.Verification.CodeTTL)

	cfg.Events.EventBusName = getEnv("EVENT_BUS_NAME", cfg.Events.EventBusName)
	cfg.Metrics.Namespace = getEnv("METRICS_NAMESPACE", cfg.Metrics.Namespace)
	cfg.Metrics.CloudWatchNamespace = getEnv("CLOUDWATCH_NAMESPACE", cfg.Metrics.CloudWatchNamespace)

	cfg.Tracing.Enabled = getEnvBool("ENABLE_TRACING", cfg.Tracing.Enabled)
	cfg.Tracing.Endpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Tracing.Endpoint)
	cfg.Tracing.SampleRate = getEnvFloat("TRACING_SAMPLE_RATE", cfg.Tracing.SampleRate)

	cfg.Idempotency.TTL = getEnvDuration("IDEMPOTENCY_TTL", cfg.Idempotency.TTL)
	cfg.Idempotency.Lease = getEnvDuration("IDEMPOTENCY_LEASE", cfg.Idempotency.Lease)
}

func defaultConfig(env Environment) *Config {
	cfg := &Config{
		Environment: env,
		ServiceName: "gigbusters-profile",
		Version:     "1.0.8",
		LogLevel:    "info",
		Server: Server{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Database: Database{
			OwnerIndex: "GSI1",
			Region:     "us-east-1",
		},
		Storage: Storage{
			UploadURLTTL: 5 * time.Minute,
		},
		Services: Services{
			HTTPTimeout: 8 * time.Second,
		},
		Auth: Auth{
			GrantType: "authorization_code",
		},
		Verification: Verification{
			CodeTTL:    15 * time.Minute,
			CodeDigits: 6,
		},
		Events: Events{
			EventBusName: "default",
			Source:       "gigbusters.profile",
		},
		Metrics: Metrics{
			Namespace:           "gigbusters_profile",
			CloudWatchNamespace: "Gigbusters/Profile",
		},
		Tracing: Tracing{
			SampleRate: 0.1,
		},
		CircuitBreaker: CircuitBreaker{
			MaxRequests:  3,
			Interval:     60 * time.Second,
			Timeout:      30 * time.Second,
			FailureRatio: 0.6,
			MinRequests:  5,
		},
		Idempotency: Idempotency{
			TTL:   24 * time.Hour,
			Lease: 5 * time.Minute,
		},
	}
	if env == Development {
		cfg.LogLevel = "debug"
		cfg.Tracing.SampleRate = 1.0
	}
	return cfg
}
