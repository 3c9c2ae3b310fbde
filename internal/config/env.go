package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/rakhmonovquvonchbek/taskemon/internal/progression"
)

// LoadEnv reads .env files into the process environment. Missing files are ignored;
// variables already set win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// ApplyEnv overrides file values with TASKEMON_* variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("TASKEMON_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := getEnvDuration("TASKEMON_SHUTDOWN_TIMEOUT"); v > 0 {
		c.Server.ShutdownTimeout = v
	}
	if v := os.Getenv("TASKEMON_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("TASKEMON_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("TASKEMON_UNLOCK_MODE"); v != "" {
		c.Progression.UnlockMode = progression.UnlockMode(v)
	}
	if v := os.Getenv("TASKEMON_CATALOG"); v != "" {
		c.Progression.CatalogPath = v
	}
}

// FromEnv loads path, then applies environment overrides.
func FromEnv(path string) (*Config, error) {
	if v := os.Getenv("TASKEMON_CONFIG"); v != "" && path == "" {
		path = v
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnvDuration(key string) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0
	}
	return d
}
