package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const configDirEnv = "MANDELZOOM_CONFIG_DIR"

func getConfigFilePath() string {
	// useful during development or other non-standard setups.
	if dir := os.Getenv(configDirEnv); dir != "" {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return filepath.Join(dir, "config.toml")
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "mandelzoom", "config.toml")
	}
	return ""
}

// Default returns the embedded default configuration.
func Default() *Config {
	data, err := configFS.ReadFile("default/config.toml")
	if err != nil {
		panic(fmt.Sprintf("no embedded default config: %v", err))
	}
	c := &Config{}
	if err := c.Load(string(data)); err != nil {
		panic(fmt.Sprintf("embedded default config: %v", err))
	}
	return c
}

// LoadFile returns the default configuration overlaid with the file at path.
// An empty path means the user config file; a missing user config file is not
// an error, a missing explicit path is.
func LoadFile(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = getConfigFilePath()
	}

	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := c.Load(string(data)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
