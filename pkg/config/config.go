package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "MEETINGSIM"

// Config holds application configuration. The sections are decoded one by one
// so their variables share the flat MEETINGSIM_ prefix.
type Config struct {
	Server  ServerConfig  `ignored:"true"`
	Latency LatencyConfig `ignored:"true"`
	Log     LogConfig     `ignored:"true"`
	// SeedDemo inserts the "Quarterly Planning" demo meeting into an empty store
	SeedDemo bool `envconfig:"SEED_DEMO" default:"true"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// LatencyConfig holds the simulated response delays of the mock backend
type LatencyConfig struct {
	Default        time.Duration `envconfig:"LATENCY_DEFAULT" default:"0s"`
	StartRecording time.Duration `envconfig:"LATENCY_START_RECORDING" default:"500ms"`
	Transcription  time.Duration `envconfig:"LATENCY_TRANSCRIPTION" default:"2s"`
	Summary        time.Duration `envconfig:"LATENCY_SUMMARY" default:"1500ms"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}
	return FromEnv()
}

// FromEnv decodes MEETINGSIM_* variables without touching .env
func FromEnv() (*Config, error) {
	var cfg Config
	for _, section := range []interface{}{&cfg, &cfg.Server, &cfg.Latency, &cfg.Log} {
		if err := envconfig.Process(EnvPrefix, section); err != nil {
			return nil, fmt.Errorf("process env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("%s_PORT is required", EnvPrefix)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%s_SHUTDOWN_TIMEOUT must be positive", EnvPrefix)
	}
	for name, d := range map[string]time.Duration{
		"LATENCY_DEFAULT":         c.Latency.Default,
		"LATENCY_START_RECORDING": c.Latency.StartRecording,
		"LATENCY_TRANSCRIPTION":   c.Latency.Transcription,
		"LATENCY_SUMMARY":         c.Latency.Summary,
	} {
		if d < 0 {
			return fmt.Errorf("%s_%s must not be negative", EnvPrefix, name)
		}
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%s_LOG_LEVEL: %w", EnvPrefix, err)
	}
	return nil
}

// Addr returns the HTTP listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// IsDevelopment reports whether the development environment is selected
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Server.Environment, "development")
}

// NewLogger builds the zap logger for the configured environment and level
func NewLogger(c *Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if c.IsDevelopment() {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
