// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type SessionConfig struct {
	CookieName string `yaml:"cookie_name"`
	ExpiryDays int    `yaml:"expiry_days"`
}

type SESConfig struct {
	Region string `yaml:"region"`
	Sender string `yaml:"sender"`
	// Loaded from environment
	AccessKeyID     string `yaml:"-"`
	SecretAccessKey string `yaml:"-"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
		Port        int    `yaml:"port"`
		BaseURL     string `yaml:"base_url"`
		SecretKey   string `yaml:"-"` // Loaded from environment
	} `yaml:"app"`

	Mongo   MongoConfig   `yaml:"mongo"`
	Session SessionConfig `yaml:"session"`
	SES     SESConfig     `yaml:"ses"`
}

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Load sensitive values from environment
	cfg.App.SecretKey = os.Getenv("APP_SECRET_KEY")
	cfg.SES.AccessKeyID = os.Getenv("SES_ACCESS_KEY_ID")
	cfg.SES.SecretAccessKey = os.Getenv("SES_SECRET_ACCESS_KEY")

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Session.CookieName == "" {
		c.Session.CookieName = "courtdesk_session"
	}
	if c.Session.ExpiryDays == 0 {
		c.Session.ExpiryDays = 7
	}
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port == 0 {
		return fmt.Errorf("app port is required")
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo uri is required")
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("mongo database is required")
	}
	if c.Session.ExpiryDays < 0 {
		return fmt.Errorf("session expiry days must not be negative")
	}
	// SES is optional; when a sender is set the region must be too
	if c.SES.Sender != "" && c.SES.Region == "" {
		return fmt.Errorf("ses region is required when a sender is configured")
	}
	return nil
}

// EmailEnabled reports whether the SES sender is fully configured.
func (c *Config) EmailEnabled() bool {
	return c.SES.Sender != "" && c.SES.Region != "" &&
		c.SES.AccessKeyID != "" && c.SES.SecretAccessKey != ""
}
