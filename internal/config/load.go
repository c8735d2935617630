package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	resolveRelativePaths(&cfg, ProjectRoot(path))
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads path when given, otherwise the nearest config found
// from the working directory, otherwise the defaults.
func LoadOrDefault(path string) (Config, string, error) {
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return Config{}, "", fmt.Errorf("resolve config path: %w", err)
		}
		cfg, err := Load(abs)
		return cfg, abs, err
	}
	found, err := FindConfigPath("")
	if errors.Is(err, ErrNoConfig) {
		return Default(), "", nil
	}
	if err != nil {
		return Config{}, "", err
	}
	cfg, err := Load(found)
	return cfg, found, err
}

// resolveRelativePaths anchors file settings at the project root.
func resolveRelativePaths(cfg *Config, root string) {
	if cfg.Log.Path != "" && !filepath.IsAbs(cfg.Log.Path) {
		cfg.Log.Path = filepath.Join(root, cfg.Log.Path)
	}
	if cfg.Server.QuestionsFile != "" && !filepath.IsAbs(cfg.Server.QuestionsFile) {
		cfg.Server.QuestionsFile = filepath.Join(root, cfg.Server.QuestionsFile)
	}
}
