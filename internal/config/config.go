package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string `yaml:"port" env:"SERVER_PORT"`
	Mode string `yaml:"mode" env:"SERVER_MODE"`
}

// DatabaseConfig holds the data store connection settings
type DatabaseConfig struct {
	Host            string `yaml:"host" env:"DB_HOST"`
	Port            string `yaml:"port" env:"DB_PORT"`
	User            string `yaml:"user" env:"DB_USER"`
	Password        string `yaml:"password" env:"DB_PASSWORD"`
	DBName          string `yaml:"dbname" env:"DB_NAME"`
	SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
	MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
	MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
	ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
}

// AuthServiceConfig selects and configures the authentication backend
type AuthServiceConfig struct {
	// Provider is "remote" for the hosted auth service or "local" for the in-process one.
	Provider  string `yaml:"provider" env:"AUTH_PROVIDER"`
	BaseURL   string `yaml:"base_url" env:"AUTH_BASE_URL"`
	APIKey    string `yaml:"api_key" env:"AUTH_API_KEY"`
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	Timeout   string `yaml:"timeout" env:"AUTH_TIMEOUT"`
	// TokenExpiration applies to tokens issued by the local provider.
	TokenExpiration string `yaml:"token_expiration" env:"AUTH_TOKEN_EXPIRATION"`
	Issuer          string `yaml:"issuer" env:"AUTH_ISSUER"`
}

// RegistrationConfig holds the rules of the registration form
type RegistrationConfig struct {
	AllowedEmailDomains []string `yaml:"allowed_email_domains" env:"REGISTRATION_ALLOWED_EMAIL_DOMAINS"`
	PasswordMinLength   int      `yaml:"password_min_length" env:"REGISTRATION_PASSWORD_MIN_LENGTH"`
	NavigationDelay     string   `yaml:"navigation_delay" env:"REGISTRATION_NAVIGATION_DELAY"`
	StudentDestination  string   `yaml:"student_destination" env:"REGISTRATION_STUDENT_DESTINATION"`
	StaffDestination    string   `yaml:"staff_destination" env:"REGISTRATION_STAFF_DESTINATION"`
	PasswordPlaceholder string   `yaml:"password_placeholder" env:"REGISTRATION_PASSWORD_PLACEHOLDER"`
	DraftTTL            string   `yaml:"draft_ttl" env:"REGISTRATION_DRAFT_TTL"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// TracingConfig holds OpenTelemetry settings
type TracingConfig struct {
	Enabled      bool    `yaml:"enabled" env:"TRACING_ENABLED"`
	Exporter     string  `yaml:"exporter" env:"TRACING_EXPORTER"`
	OTLPEndpoint string  `yaml:"otlp_endpoint" env:"TRACING_OTLP_ENDPOINT"`
	SampleRate   float64 `yaml:"sample_rate" env:"TRACING_SAMPLE_RATE"`
	ServiceName  string  `yaml:"service_name" env:"TRACING_SERVICE_NAME"`
}

// Config structure represents the application configuration
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	AuthService  AuthServiceConfig  `yaml:"auth_service"`
	Registration RegistrationConfig `yaml:"registration"`
	Logging      LoggingConfig      `yaml:"logging"`
	Tracing      TracingConfig      `yaml:"tracing"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config, err := load(configPath)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadRegistrationConfig loads the full configuration but only validates the
// registration rules, for offline tools that never reach the backends.
func LoadRegistrationConfig(configPath string) (*RegistrationConfig, error) {
	config, err := load(configPath)
	if err != nil {
		return nil, err
	}

	if err := validateRegistration(&config.Registration); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config.Registration, nil
}

func load(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The file is optional, environment variables alone are enough
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "careerhub"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"

	config.AuthService.Provider = "remote"
	config.AuthService.Timeout = "10s"
	config.AuthService.TokenExpiration = "1h"
	config.AuthService.Issuer = "careerhub.local"

	config.Registration.AllowedEmailDomains = []string{"ashesi.edu.gh", "aucampus.onmicrosoft.com"}
	config.Registration.PasswordMinLength = 8
	config.Registration.NavigationDelay = "5s"
	config.Registration.StudentDestination = "/dashboard/student"
	config.Registration.StaffDestination = "/dashboard/admin"
	config.Registration.PasswordPlaceholder = "[managed by auth service]"
	config.Registration.DraftTTL = "30m"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Tracing.Exporter = "none"
	config.Tracing.SampleRate = 1.0
	config.Tracing.ServiceName = "careerhub-registration"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	switch config.AuthService.Provider {
	case "remote":
		if config.AuthService.BaseURL == "" {
			return fmt.Errorf("auth service base URL is required for the remote provider")
		}
		if config.AuthService.APIKey == "" {
			return fmt.Errorf("auth service API key is required for the remote provider")
		}
	case "local":
		if config.AuthService.JWTSecret == "" {
			return fmt.Errorf("auth service JWT secret is required for the local provider")
		}
	default:
		return fmt.Errorf("unknown auth provider %q", config.AuthService.Provider)
	}

	if err := validateRegistration(&config.Registration); err != nil {
		return err
	}

	for name, value := range map[string]string{
		"auth service timeout":       config.AuthService.Timeout,
		"auth token expiration":      config.AuthService.TokenExpiration,
		"database conn max lifetime": config.Database.ConnMaxLifetime,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	return nil
}

func validateRegistration(reg *RegistrationConfig) error {
	if len(reg.AllowedEmailDomains) == 0 {
		return fmt.Errorf("at least one allowed email domain is required")
	}
	if reg.PasswordMinLength < 1 {
		return fmt.Errorf("password minimum length must be positive")
	}
	if reg.StudentDestination == "" || reg.StaffDestination == "" {
		return fmt.Errorf("both registration destinations are required")
	}
	if _, err := time.ParseDuration(reg.NavigationDelay); err != nil {
		return fmt.Errorf("invalid registration navigation delay format: %w", err)
	}
	if _, err := time.ParseDuration(reg.DraftTTL); err != nil {
		return fmt.Errorf("invalid registration draft ttl format: %w", err)
	}
	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
