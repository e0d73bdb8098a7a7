package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string          `yaml:"environment" default:"development"`
	Server      ServerConfig    `yaml:"server"`
	Metrics     MetricsConfig   `yaml:"metrics"`
	Logger      LoggerConfig    `yaml:"logger"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
	Analysis    AnalysisConfig  `yaml:"analysis"`
	Cache       CacheConfig     `yaml:"cache"`
	Client      ClientConfig    `yaml:"client"`
}

type ServerConfig struct {
	Port            int           `yaml:"port" default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	SlowThreshold   time.Duration `yaml:"slow_threshold" default:"500ms"`
	CORS            bool          `yaml:"cors" default:"true"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" default:"true"`
	Path    string `yaml:"path" default:"/metrics"`
}

type LoggerConfig struct {
	Level  string `yaml:"level" default:"info"`
	Format string `yaml:"format" default:"json"`
	Output string `yaml:"output" default:"stdout"`
}

// RateLimitConfig is a per-client token bucket: RPS refill, Burst capacity.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" default:"true"`
	RPS     float64 `yaml:"rps" default:"10"`
	Burst   int     `yaml:"burst" default:"20"`
}

type AnalysisConfig struct {
	MinPoints int `yaml:"min_points" default:"20"`
	MaxPoints int `yaml:"max_points" default:"10000"`
}

// CacheConfig controls reuse of results for identical analysis inputs.
type CacheConfig struct {
	Enabled    bool          `yaml:"enabled" default:"true"`
	Backend    string        `yaml:"backend" default:"memory"`
	TTL        time.Duration `yaml:"ttl" default:"5m"`
	MaxEntries int           `yaml:"max_entries" default:"1000"`
	Redis      struct {
		Addr     string `yaml:"addr" default:"localhost:6379"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		Prefix   string `yaml:"prefix" default:"pairscope:"`
	} `yaml:"redis"`
}

// ClientConfig is used by the CLI when it talks to a running server.
type ClientConfig struct {
	BaseURL  string        `yaml:"base_url" default:"http://localhost:8080"`
	Timeout  time.Duration `yaml:"timeout" default:"5s"`
	Attempts int           `yaml:"attempts" default:"3"`
}

// Default returns a configuration populated only from struct defaults.
func Default() *Config {
	var c Config
	// defaults only fails on malformed tags
	if err := defaults.Set(&c); err != nil {
		panic(fmt.Sprintf("config defaults: %v", err))
	}
	return &c
}

// Load reads and parses a YAML configuration file. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// LoadWithEnv loads config from YAML (or defaults when path is empty) and
// overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		c = loaded
	}

	if v := os.Getenv("PAIRSCOPE_ENV"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("PAIRSCOPE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("PAIRSCOPE_PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logger.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Logger.Format = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("logger.format must be 'json' or 'console', got '%s'", c.Logger.Format)
	}
	if c.Analysis.MinPoints < 2 {
		return fmt.Errorf("analysis.min_points must be at least 2, got %d", c.Analysis.MinPoints)
	}
	if c.Analysis.MaxPoints < c.Analysis.MinPoints {
		return fmt.Errorf("analysis.max_points (%d) must not be below analysis.min_points (%d)", c.Analysis.MaxPoints, c.Analysis.MinPoints)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit.rps and rate_limit.burst must be positive when enabled")
	}
	if c.Cache.Enabled && c.Cache.Backend != "memory" && c.Cache.Backend != "redis" {
		return fmt.Errorf("cache.backend must be 'memory' or 'redis', got '%s'", c.Cache.Backend)
	}
	return nil
}
