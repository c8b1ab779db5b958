// Package config loads and validates the service configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgconfig "profeed/pkg/config"
)

// Duration wraps time.Duration so YAML values can use strings like "15s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config represents the service configuration loaded from YAML.
type Config struct {
	Server struct {
		Port            int      `yaml:"port"`
		ReadTimeout     Duration `yaml:"read_timeout"`
		WriteTimeout    Duration `yaml:"write_timeout"`
		IdleTimeout     Duration `yaml:"idle_timeout"`
		ShutdownTimeout Duration `yaml:"shutdown_timeout"`
		MaxBodyBytes    int64    `yaml:"max_body_bytes"`
	} `yaml:"server"`
	Auth struct {
		TokenEnv string `yaml:"token_env"`
	} `yaml:"auth"`
	Feeds struct {
		SystemUserIDEnv string `yaml:"system_user_id_env"`
	} `yaml:"feeds"`
}

// Load loads the service configuration from a YAML file.
// The path parameter is expected to come from a trusted source (command-line argument or hardcoded default).
func Load(path string) (*Config, error) {
	// #nosec G304 -- path is provided by trusted source (CLI arg or config), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Server.Port == 0 {
		config.Server.Port = pkgconfig.GetEnvInt("PORT", 8080)
	}
	if config.Server.ReadTimeout == 0 {
		config.Server.ReadTimeout = Duration(15 * time.Second)
	}
	if config.Server.WriteTimeout == 0 {
		config.Server.WriteTimeout = Duration(15 * time.Second)
	}
	if config.Server.IdleTimeout == 0 {
		config.Server.IdleTimeout = Duration(60 * time.Second)
	}
	if config.Server.ShutdownTimeout == 0 {
		config.Server.ShutdownTimeout = Duration(30 * time.Second)
	}
	if config.Server.MaxBodyBytes == 0 {
		config.Server.MaxBodyBytes = 1 << 20
	}
}

func validate(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", config.Server.Port)
	}

	if err := pkgconfig.ValidatePositiveDuration("server read_timeout", config.Server.ReadTimeout.Std()); err != nil {
		return err
	}
	if err := pkgconfig.ValidatePositiveDuration("server write_timeout", config.Server.WriteTimeout.Std()); err != nil {
		return err
	}
	if err := pkgconfig.ValidatePositiveDuration("server idle_timeout", config.Server.IdleTimeout.Std()); err != nil {
		return err
	}
	if err := pkgconfig.ValidateDurationRange("server shutdown_timeout", config.Server.ShutdownTimeout.Std(), time.Second, 5*time.Minute); err != nil {
		return err
	}

	if config.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server max_body_bytes must be positive")
	}

	if config.Auth.TokenEnv == "" {
		return fmt.Errorf("auth token_env is required")
	}
	if config.Feeds.SystemUserIDEnv == "" {
		return fmt.Errorf("feeds system_user_id_env is required")
	}

	return nil
}

// AuthToken resolves the bearer token from the configured environment variable.
func (c *Config) AuthToken() (string, error) {
	token := os.Getenv(c.Auth.TokenEnv)
	if token == "" {
		return "", fmt.Errorf("environment variable %s is not set", c.Auth.TokenEnv)
	}
	return token, nil
}

// SystemUserID resolves the system user identifier from the configured
// environment variable. Feeds owned by this user are served to unauthenticated
// public listings.
func (c *Config) SystemUserID() (string, error) {
	id := os.Getenv(c.Feeds.SystemUserIDEnv)
	if id == "" {
		return "", fmt.Errorf("environment variable %s is not set", c.Feeds.SystemUserIDEnv)
	}
	return id, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
