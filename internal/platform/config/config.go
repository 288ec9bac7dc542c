package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "mindspace/internal/platform/errors"
)

const (
	StorageSQLite = "sqlite"
	StorageFile   = "file"
	StorageMemory = "memory"

	fileName = "config.yaml"
)

type Config struct {
	DataDir      string
	DBPath       string
	ArchiveDir   string
	LogPath      string
	Storage      string
	LogLevel     string
	Presets      []int
	TickInterval time.Duration
}

// fileConfig mirrors the optional config.yaml in the data directory.
type fileConfig struct {
	Storage      string `yaml:"storage"`
	LogLevel     string `yaml:"log_level"`
	Presets      []int  `yaml:"presets"`
	TickInterval string `yaml:"tick_interval"`
}

func New(dataDir string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required: %w", apperrors.ErrInvalidInput)
	}
	cfg := Config{
		DataDir:      dataDir,
		DBPath:       filepath.Join(dataDir, "mindspace.db"),
		ArchiveDir:   filepath.Join(dataDir, "archive"),
		LogPath:      filepath.Join(dataDir, "mindspace.log"),
		Storage:      StorageSQLite,
		LogLevel:     "info",
		Presets:      []int{15, 25, 45},
		TickInterval: time.Second,
	}
	if err := cfg.applyFile(filepath.Join(dataDir, fileName)); err != nil {
		return Config{}, err
	}
	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDotEnv loads a .env file from the working directory when one exists.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func (c *Config) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	fc := fileConfig{}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode config: %w", err)
	}
	if fc.Storage != "" {
		c.Storage = fc.Storage
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if len(fc.Presets) > 0 {
		c.Presets = fc.Presets
	}
	if fc.TickInterval != "" {
		d, err := time.ParseDuration(fc.TickInterval)
		if err != nil {
			return fmt.Errorf("parse tick_interval: %w", err)
		}
		c.TickInterval = d
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("MINDSPACE_STORAGE")); v != "" {
		c.Storage = v
	}
	if v := strings.TrimSpace(os.Getenv("MINDSPACE_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
}

func (c Config) validate() error {
	switch c.Storage {
	case StorageSQLite, StorageFile, StorageMemory:
	default:
		return fmt.Errorf("unknown storage %q: %w", c.Storage, apperrors.ErrInvalidInput)
	}
	for _, p := range c.Presets {
		if p <= 0 {
			return fmt.Errorf("preset must be positive, got %d: %w", p, apperrors.ErrInvalidInput)
		}
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive: %w", apperrors.ErrInvalidInput)
	}
	return nil
}
