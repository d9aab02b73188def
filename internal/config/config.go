// Package config loads pkrhistory settings from an HCL file, a .env file and
// the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"

	"github.com/lox/pkrhistory/internal/storage"
)

// Environment variables that override file settings.
const (
	EnvHero       = "PKRHISTORY_HERO"
	EnvDataDir    = "PKRHISTORY_DATA_DIR"
	EnvStorage    = "PKRHISTORY_STORAGE"
	EnvStorageURL = "PKRHISTORY_STORAGE_URL"
	EnvWorkers    = "PKRHISTORY_WORKERS"
)

// Config is the complete pkrhistory configuration.
type Config struct {
	Hero    string         `hcl:"hero,optional"`
	Workers int            `hcl:"workers,optional"`
	Storage *StorageConfig `hcl:"storage,block"`
}

// StorageConfig selects where raw texts are read and records written.
type StorageConfig struct {
	Backend string `hcl:"backend,optional"`
	DataDir string `hcl:"data_dir,optional"`
	URL     string `hcl:"url,optional"`
	Index   string `hcl:"index,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Workers: 10,
		Storage: &StorageConfig{
			Backend: storage.BackendFS,
			DataDir: "./data",
			Index:   storage.DefaultIndex,
		},
	}
}

// Load reads filename, falling back to defaults when it does not exist, then
// applies .env and environment overrides.
func Load(filename string) (*Config, error) {
	cfg, err := loadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func loadFile(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()
	if cfg.Workers == 0 {
		cfg.Workers = defaults.Workers
	}
	if cfg.Storage == nil {
		cfg.Storage = defaults.Storage
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = defaults.Storage.Backend
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = defaults.Storage.DataDir
	}
	if cfg.Storage.Index == "" {
		cfg.Storage.Index = defaults.Storage.Index
	}
	return &cfg, nil
}

// loadDotEnv exports the variables of a .env file that are not already set.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

// ApplyEnv overrides settings from environment variables, read through
// lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvHero); ok {
		c.Hero = v
	}
	if v, ok := lookup(EnvDataDir); ok {
		c.Storage.DataDir = v
	}
	if v, ok := lookup(EnvStorage); ok {
		c.Storage.Backend = v
	}
	if v, ok := lookup(EnvStorageURL); ok {
		c.Storage.URL = v
	}
	if v, ok := lookup(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvWorkers, v, err)
		}
		c.Workers = n
	}
	return nil
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("invalid workers: %d", c.Workers)
	}
	switch c.Storage.Backend {
	case storage.BackendFS, storage.BackendSQLite:
	case storage.BackendRedis, storage.BackendPostgres, storage.BackendElasticsearch:
		if c.Storage.URL == "" {
			return fmt.Errorf("storage backend %s requires a url", c.Storage.Backend)
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}

// StorageOptions converts the storage block for storage.Open.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend: c.Storage.Backend,
		DataDir: c.Storage.DataDir,
		URL:     c.Storage.URL,
		Index:   c.Storage.Index,
	}
}
