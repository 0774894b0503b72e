// Package config loads the service configuration from YAML and OPRTTS_*
// environment variables.
package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/opr-tts-api/internal/entities"
	"github.com/KirkDiggler/opr-tts-api/internal/errors"
)

// Config is the root application configuration.
type Config struct {
	Server        ServerConfig          `yaml:"server"`
	Redis         RedisConfig           `yaml:"redis"`
	ArmyForge     ArmyForgeConfig       `yaml:"army_forge"`
	Observability ObservabilityConfig   `yaml:"observability"`
	Output        entities.OutputConfig `yaml:"output"`
}

// ServerConfig describes HTTP server settings.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// RedisConfig describes where shared lists are stored.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	UseTLS   bool   `yaml:"use_tls"`
	// ListTTL expires saved lists. Zero keeps them.
	ListTTL time.Duration `yaml:"list_ttl"`
}

// ArmyForgeConfig describes the upstream list builder.
type ArmyForgeConfig struct {
	BaseURL       string        `yaml:"base_url"`
	BetaBaseURL   string        `yaml:"beta_base_url"`
	Timeout       time.Duration `yaml:"timeout"`
	RulesCacheTTL time.Duration `yaml:"rules_cache_ttl"`
}

// ObservabilityConfig describes logging and metrics settings.
type ObservabilityConfig struct {
	LogLevel       string `yaml:"log_level"`
	MetricsEnabled bool   `yaml:"metrics_enabled"`
}

// Default returns a Config with the values the service ships with.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Redis: RedisConfig{
			Addr:    "localhost:6379",
			ListTTL: 30 * 24 * time.Hour,
		},
		ArmyForge: ArmyForgeConfig{
			BaseURL:       "https://army-forge.onepagerules.com",
			BetaBaseURL:   "https://army-forge-beta.onepagerules.com",
			Timeout:       30 * time.Second,
			RulesCacheTTL: time.Hour,
		},
		Observability: ObservabilityConfig{
			LogLevel:       "info",
			MetricsEnabled: true,
		},
		Output: entities.DefaultOutputConfig(),
	}
}

// Load reads a YAML config file over the defaults, applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config "+path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config "+path)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	errors.ValidateNonNegative("server.read_timeout", c.Server.ReadTimeout, vb)
	errors.ValidateNonNegative("server.write_timeout", c.Server.WriteTimeout, vb)
	errors.ValidateNonNegative("server.shutdown_timeout", c.Server.ShutdownTimeout, vb)
	errors.ValidateNonNegative("redis.list_ttl", c.Redis.ListTTL, vb)
	errors.ValidateNonNegative("army_forge.timeout", c.ArmyForge.Timeout, vb)
	errors.ValidateNonNegative("army_forge.rules_cache_ttl", c.ArmyForge.RulesCacheTTL, vb)
	errors.ValidateRequired("redis.addr", c.Redis.Addr, vb)
	if c.Redis.DB < 0 {
		vb.Field("redis.db", "must not be negative")
	}
	errors.ValidateRequired("army_forge.base_url", c.ArmyForge.BaseURL, vb)
	errors.ValidateEnum("observability.log_level", c.Observability.LogLevel,
		[]string{"debug", "info", "warn", "error"}, vb)

	return vb.Build()
}

// applyEnvOverrides reads OPRTTS_* environment variables. Only the fields
// that differ between deployments are supported.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("OPRTTS_SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.InvalidArgumentf("OPRTTS_SERVER_PORT must be a number, got %q", v)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("OPRTTS_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("OPRTTS_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("OPRTTS_REDIS_USE_TLS"); v != "" {
		useTLS, err := strconv.ParseBool(v)
		if err != nil {
			return errors.InvalidArgumentf("OPRTTS_REDIS_USE_TLS must be a boolean, got %q", v)
		}
		cfg.Redis.UseTLS = useTLS
	}
	if v := os.Getenv("OPRTTS_ARMY_FORGE_BASE_URL"); v != "" {
		cfg.ArmyForge.BaseURL = v
	}
	if v := os.Getenv("OPRTTS_OBSERVABILITY_LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	return nil
}
