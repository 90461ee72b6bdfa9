package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the duel configuration.
// Search order: customPath -> ~/.bayduel/configs/duel.yaml -> ./configs/duel.yaml -> embedded default
func Load(customPath string) (DuelConfig, error) {
	var cfg DuelConfig

	// Try custom path first; an explicit path that fails is an error
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return fillMissing(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("duel.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return fillMissing(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/duel.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return fillMissing(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDuelYAML, &cfg); err != nil {
		return DefaultDuelConfig(), nil // Fallback to hardcoded if embed fails
	}
	return fillMissing(cfg), nil
}

// userConfigPath returns the path to the user config file, or empty if
// home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bayduel", "configs", filename)
}

// fillMissing substitutes defaults for bindings a partial config file
// left empty, so rebinding one key does not silently unbind the rest.
func fillMissing(cfg DuelConfig) DuelConfig {
	def := DefaultDuelConfig()

	fillKeys(&cfg.Controls.Player1, def.Controls.Player1)
	fillKeys(&cfg.Controls.Player2, def.Controls.Player2)

	if cfg.Server.Address == "" {
		cfg.Server.Address = def.Server.Address
	}
	if cfg.Server.IdleTimeoutMinutes <= 0 {
		cfg.Server.IdleTimeoutMinutes = def.Server.IdleTimeoutMinutes
	}
	return cfg
}

func fillKeys(keys *PlayerKeys, def PlayerKeys) {
	if keys.Up == "" {
		keys.Up = def.Up
	}
	if keys.Down == "" {
		keys.Down = def.Down
	}
	if keys.Left == "" {
		keys.Left = def.Left
	}
	if keys.Right == "" {
		keys.Right = def.Right
	}
	if keys.Fire == "" {
		keys.Fire = def.Fire
	}
}
