package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const defaultPath = "./config.yaml"

// Load resolves the config file from CONFIG_PATH and delegates to LoadFile.
// Without CONFIG_PATH a missing ./config.yaml is not an error: the service
// then runs on environment variables and defaults alone.
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return LoadFile(path)
	}
	if _, err := os.Stat(defaultPath); err != nil {
		return load("")
	}
	return load(defaultPath)
}

// LoadFile reads path, which must exist. Environment variables override the
// file and env-default tags fill the rest. A .env file (or DOTENV_PATH) is
// merged into the process environment first without overwriting.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	}
	return load(path)
}

func load(path string) (*Config, error) {
	if err := loadDotenv(); err != nil {
		return nil, err
	}

	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func loadDotenv() error {
	path, explicit := os.LookupEnv("DOTENV_PATH")
	if !explicit || path == "" {
		path, explicit = ".env", false
	}

	err := godotenv.Load(path)
	if err == nil || (!explicit && errors.Is(err, fs.ErrNotExist)) {
		return nil
	}
	return fmt.Errorf("config: dotenv %s: %w", path, err)
}
