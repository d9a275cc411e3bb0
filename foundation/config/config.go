// Package config persists the editor's user preferences to a YAML file in
// the user's home directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// fileName is the preferences file kept under the user's home directory.
const fileName = ".hostsmith.yaml"

var mu sync.RWMutex

// Config represents the persisted preferences. Every field is optional;
// absent values fall back to the platform defaults.
type Config struct {
	Source    string `yaml:"-"`
	HostsFile string `yaml:"hosts_file,omitempty"`
	Encoding  string `yaml:"encoding,omitempty"`
	BackupDir string `yaml:"backup_dir,omitempty"`
}

// Path returns the location of the preferences file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("os.UserHomeDir: %w", err)
	}

	return filepath.Join(home, fileName), nil
}

// Load reads the preferences from their default location. A missing file is
// not an error; it yields an empty config ready to be saved.
func Load() (Config, error) {
	file, err := Path()
	if err != nil {
		return Config{}, err
	}

	cfg, err := LoadFile(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{Source: file}, nil
		}
		return Config{}, err
	}

	return cfg, nil
}

// LoadFile reads the specified preferences file from disk.
func LoadFile(file string) (Config, error) {
	mu.RLock()
	defer mu.RUnlock()

	data, err := os.ReadFile(file)
	if err != nil {
		return Config{}, fmt.Errorf("os.ReadFile: %w", err)
	}

	cfg := Config{
		Source: file,
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	return cfg, nil
}

// Save writes the config back to its source file.
func (cfg Config) Save() error {
	bs, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("yaml.Marshal: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()

	if err := os.WriteFile(cfg.Source, bs, 0o600); err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}

	return nil
}
