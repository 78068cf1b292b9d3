// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/typetest/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Test    TestConfig    `toml:"test"`
	Catalog CatalogConfig `toml:"catalog"`
}

// TestConfig maps test-related settings.
type TestConfig struct {
	Difficulty *string `toml:"difficulty"`
	LiveTimer  *bool   `toml:"live-timer"`
	Plain      *bool   `toml:"plain"`
	TextsDir   *string `toml:"texts-dir"`
}

// CatalogConfig overrides the built-in sentence pools.
type CatalogConfig struct {
	Easy   []string `toml:"easy"`
	Medium []string `toml:"medium"`
	Hard   []string `toml:"hard"`
}

// Pools returns the configured sentences keyed by tier.
func (c CatalogConfig) Pools() map[model.Tier][]string {
	pools := map[model.Tier][]string{}
	if len(c.Easy) > 0 {
		pools[model.TierEasy] = c.Easy
	}
	if len(c.Medium) > 0 {
		pools[model.TierMedium] = c.Medium
	}
	if len(c.Hard) > 0 {
		pools[model.TierHard] = c.Hard
	}
	return pools
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
