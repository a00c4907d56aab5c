// Package config loads strand's configuration: the YAML plugin manifest
// listing what to install and where, and the optional TOML settings file
// tuning how installation behaves.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samhoang/strand/internal/plugin"
)

// Config is the user's plugin manifest (config.yaml).
type Config struct {
	PluginDir string          `yaml:"plugin_dir"`
	Plugins   []plugin.Plugin `yaml:"plugins"`
}

// Load reads and parses the plugin manifest at path. Plugin entries are
// plain spec strings; a malformed spec fails the whole load so broken
// manifests surface before any network work starts. The plugin directory
// has a leading "~" expanded.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.PluginDir == "" {
		return nil, fmt.Errorf("parse %s: plugin_dir is not set", path)
	}

	expanded, err := ExpandPath(cfg.PluginDir)
	if err != nil {
		return nil, err
	}
	cfg.PluginDir = expanded

	return &cfg, nil
}
