package config

import (
	_ "embed"
)

//go:embed defaults/duel.yaml
var defaultDuelYAML []byte

// DefaultDuelConfig returns the default configuration: WASD plus F for
// Player 1, arrows plus Enter for Player 2.
func DefaultDuelConfig() DuelConfig {
	return DuelConfig{
		Controls: ControlsConfig{
			Player1: PlayerKeys{
				Up:    "w",
				Down:  "s",
				Left:  "a",
				Right: "d",
				Fire:  "f",
			},
			Player2: PlayerKeys{
				Up:    "up",
				Down:  "down",
				Left:  "left",
				Right: "right",
				Fire:  "enter",
			},
		},
		Server: ServerConfig{
			Address:            ":23235",
			HostKeyPath:        "",
			IdleTimeoutMinutes: 30,
		},
	}
}
