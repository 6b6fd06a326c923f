// Package fixtureconfig holds the settings of a fixture run: where the league API lives,
// how long to wait for it, and how random data is seeded.
package fixtureconfig

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIURL         = "http://localhost:8080"
	DefaultTimeoutSeconds = 30
	DefaultLogLevel       = "info"
	DefaultStubPort       = "8080"
)

// Config holds fixture-run settings
type Config struct {
	APIURL         string `yaml:"api_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Seed           int64  `yaml:"seed"` // 0 seeds from the clock
	LogLevel       string `yaml:"log_level"`
	StubPort       string `yaml:"stub_port"`
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		APIURL:         DefaultAPIURL,
		TimeoutSeconds: DefaultTimeoutSeconds,
		LogLevel:       DefaultLogLevel,
		StubPort:       DefaultStubPort,
	}
}

// Load reads an optional YAML file, then a .env next to it, then applies environment
// overrides. An empty path skips the file and loads .env from the working directory.
func Load(path string) (*Config, error) {
	cfg := Default()

	envPath := ".env"
	if path != "" {
		envPath = filepath.Join(filepath.Dir(path), ".env")

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// NewConfigFromEnv reads LEAGUE_API_URL, LEAGUE_API_TIMEOUT, FIXTURE_SEED, LOG_LEVEL and STUB_PORT (with defaults)
func NewConfigFromEnv() Config {
	cfg := Default()
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	c.APIURL = getEnv("LEAGUE_API_URL", c.APIURL)
	c.TimeoutSeconds = getEnvAsInt("LEAGUE_API_TIMEOUT", c.TimeoutSeconds)
	c.Seed = getEnvAsInt64("FIXTURE_SEED", c.Seed)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.StubPort = getEnv("STUB_PORT", c.StubPort)
}

func (c Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api url is required")
	}
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api url %q is not an absolute URL", c.APIURL)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout must be positive, got %d", c.TimeoutSeconds)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Level returns the zerolog level, falling back to info
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return fallback
}
