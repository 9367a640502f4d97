// Package config loads optional CLI defaults from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable consulted when no --config flag is given.
const EnvVar = "CATALOG_CONFIG"

// DefaultDatabase is the catalog file used when neither a flag nor a config
// file names one. It is relative, so it lives in the working directory.
const DefaultDatabase = "product.db"

// Config holds defaults for the global CLI flags.
type Config struct {
	Database string `yaml:"db"`
	Format   string `yaml:"format"`
	Verbose  bool   `yaml:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Database: DefaultDatabase,
		Format:   "text",
	}
}

// Load reads the config file at path and overlays it on Default.
// An empty path means no file: Default is returned as is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Database == "" {
		cfg.Database = DefaultDatabase
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}

	return cfg, nil
}

// Resolve picks the config file path: the explicit flag value if set,
// otherwise the CATALOG_CONFIG environment variable.
func Resolve(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvVar)
}
