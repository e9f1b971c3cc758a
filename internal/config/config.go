// Package config persists the bridge address and credential between
// runs, in a TOML file under the per-user config directory.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

const (
	appName  = "blilys"
	fileName = "config.toml"
)

// Config is the persisted per-installation record.
type Config struct {
	Bridge Bridge `toml:"bridge"`
}

// Bridge holds the cached bridge connection details. Both fields are
// optional; an empty string means the field has never been set.
type Bridge struct {
	IP       string `toml:"ip,omitempty"`
	Username string `toml:"username,omitempty"`
}

// ParseError reports a config file that exists but does not parse.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed config file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ResolvePath returns the per-user config file path, creating the
// containing directory if necessary.
func ResolvePath() (string, error) {
	dir := filepath.Join(xdg.ConfigHome, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads the config file at path. A missing file is not an error:
// it yields an empty Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &cfg, nil
}

// Save overwrites the config file at path.
func Save(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Print writes the file path as a comment to errw and the serialized
// config to w, keeping stdout parseable TOML.
func Print(w, errw io.Writer, path string, cfg *Config) error {
	fmt.Fprintf(errw, "# %s\n", path)
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}
	_, err = w.Write(data)
	return err
}
