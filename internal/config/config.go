package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rakhmonovquvonchbek/taskemon/internal/progression"
)

type Config struct {
	Server      ServerConfig      `yaml:"server" json:"server"`
	Log         LogConfig         `yaml:"log" json:"log"`
	Progression ProgressionConfig `yaml:"progression" json:"progression"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" json:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout"`
}

func (s *ServerConfig) ApplyDefaults() {
	if s.Addr == "" {
		s.Addr = ":8080"
	}
	if s.ShutdownTimeout == 0 {
		s.ShutdownTimeout = 10 * time.Second
	}
}

func (c *Config) ApplyDefaults() {
	c.Server.ApplyDefaults()
	c.Log.ApplyDefaults()
	c.Progression.ApplyDefaults()
}

func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return c.Progression.Validate()
}

// Default is the configuration used when no file is given.
func Default() *Config {
	var c Config
	c.ApplyDefaults()
	return &c
}

// Load reads a YAML config file. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	var r Config
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	r.ApplyDefaults()
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &r, nil
}

// ProgressionConfig tunes the engine.
type ProgressionConfig struct {
	UnlockMode  progression.UnlockMode `yaml:"unlock_mode" json:"unlock_mode"`
	CatalogPath string                 `yaml:"catalog_path" json:"catalog_path"`
}

func (p *ProgressionConfig) ApplyDefaults() {
	if p.UnlockMode == "" {
		p.UnlockMode = progression.UnlockModeGlobal
	}
}

func (p ProgressionConfig) Validate() error {
	switch p.UnlockMode {
	case progression.UnlockModeGlobal, progression.UnlockModePerPlayer:
		return nil
	default:
		return fmt.Errorf("progression.unlock_mode: unknown mode %q", p.UnlockMode)
	}
}
