// Package config provides YAML-based configuration for key bindings
// and the SSH server. Simulation rules (map layout, health, projectile
// capacity) are compile-time constants in the duel package and are
// deliberately not configurable.
package config

// DuelConfig is the root configuration document.
type DuelConfig struct {
	Controls ControlsConfig `yaml:"controls"`
	Server   ServerConfig   `yaml:"server"`
}

// ControlsConfig holds both players' key bindings.
type ControlsConfig struct {
	Player1 PlayerKeys `yaml:"player1"`
	Player2 PlayerKeys `yaml:"player2"`
}

// PlayerKeys binds one player's actions to Bubble Tea key names.
type PlayerKeys struct {
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	Fire  string `yaml:"fire"`
}

// ServerConfig holds defaults for the SSH server; serve command flags
// override these.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}
