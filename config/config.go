package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the application
type Config struct {
	App         AppConfig         `toml:"app"`
	Celebration CelebrationConfig `toml:"celebration"`
	Activity    ActivityConfig    `toml:"activity"`
}

// AppConfig holds application configuration
type AppConfig struct {
	Environment string `toml:"environment"`
	Port        string `toml:"port"`
}

// CelebrationConfig holds the party button settings
type CelebrationConfig struct {
	Pause Duration `toml:"pause"`
	Rate  float64  `toml:"rate"` // stream requests per second per client IP
	Burst int      `toml:"burst"`
}

// ActivityConfig holds the diagnostics log settings
type ActivityConfig struct {
	LogSize int `toml:"log_size"`
}

// Duration is a time.Duration that reads "1s" style strings from TOML
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText writes the duration as a Go duration string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		App: AppConfig{
			Environment: "development",
			Port:        "8080",
		},
		Celebration: CelebrationConfig{
			Pause: Duration{time.Second},
			Rate:  2,
			Burst: 5,
		},
		Activity: ActivityConfig{
			LogSize: 100,
		},
	}
}

// Load loads configuration from an optional TOML file, then environment
// variables. An empty path falls back to CONFIG_FILE.
func Load(path string) (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	config := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := applyEnv(config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings the server cannot run with
func (c *Config) Validate() error {
	if c.App.Port == "" {
		return errors.New("app port must not be empty")
	}
	if c.Celebration.Pause.Duration < 0 {
		return fmt.Errorf("celebration pause must not be negative, got %s", c.Celebration.Pause)
	}
	if c.Celebration.Rate <= 0 || c.Celebration.Burst <= 0 {
		return fmt.Errorf("celebration rate and burst must be positive, got %v/%d", c.Celebration.Rate, c.Celebration.Burst)
	}
	return nil
}

func applyEnv(c *Config) error {
	c.App.Environment = getEnv("APP_ENV", c.App.Environment)
	c.App.Port = getEnv("APP_PORT", c.App.Port)

	if v, ok := os.LookupEnv("CELEBRATION_PAUSE"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CELEBRATION_PAUSE: %w", err)
		}
		c.Celebration.Pause = Duration{d}
	}
	if v, ok := os.LookupEnv("CELEBRATE_RATE"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("CELEBRATE_RATE: %w", err)
		}
		c.Celebration.Rate = f
	}
	if v, ok := os.LookupEnv("CELEBRATE_BURST"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CELEBRATE_BURST: %w", err)
		}
		c.Celebration.Burst = n
	}
	if v, ok := os.LookupEnv("ACTIVITY_LOG_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ACTIVITY_LOG_SIZE: %w", err)
		}
		c.Activity.LogSize = n
	}
	return nil
}

// IsDevelopment reports whether the app runs in development mode
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
