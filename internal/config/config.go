package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Auth     AuthConfig     `yaml:"auth"`
}

type DatabaseConfig struct {
	// Path of the single-file embedded store.
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Development bool `yaml:"development"`
}

type AuthConfig struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

// Load reads configuration from the YAML file at path (optional; defaults
// apply when it is absent), then applies environment overrides:
// ORGTRACKER_DB_PATH, ORGTRACKER_DEV_LOG, ORGTRACKER_BCRYPT_COST.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{Path: "orgtracker.db"},
		Logging:  LoggingConfig{Development: false},
		Auth:     AuthConfig{BcryptCost: bcrypt.DefaultCost},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	cfg.Database.Path = getEnv("ORGTRACKER_DB_PATH", cfg.Database.Path)
	if v := os.Getenv("ORGTRACKER_DEV_LOG"); v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ORGTRACKER_DEV_LOG: %w", err)
		}
		cfg.Logging.Development = dev
	}
	if v := os.Getenv("ORGTRACKER_BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ORGTRACKER_BCRYPT_COST: %w", err)
		}
		cfg.Auth.BcryptCost = cost
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
