package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmelnik/bayduel/internal/config"
	"github.com/nmelnik/bayduel/internal/core"
)

// binding associates a key string with a player and an action.
type binding struct {
	player core.PlayerID
	action core.Action
}

// KeyMapper translates Bubble Tea key messages to per-player game actions.
// Bindings are built from the controls configuration, so both players can
// remap their keys without code changes.
type KeyMapper struct {
	bindings map[string]binding
}

// NewKeyMapper creates a key mapper from the given controls configuration.
func NewKeyMapper(controls config.ControlsConfig) *KeyMapper {
	km := &KeyMapper{bindings: make(map[string]binding)}
	km.bindPlayer(core.Player1, controls.Player1)
	km.bindPlayer(core.Player2, controls.Player2)
	return km
}

func (km *KeyMapper) bindPlayer(id core.PlayerID, keys config.PlayerKeys) {
	km.bind(keys.Up, id, core.ActionUp)
	km.bind(keys.Down, id, core.ActionDown)
	km.bind(keys.Left, id, core.ActionLeft)
	km.bind(keys.Right, id, core.ActionRight)
	km.bind(keys.Fire, id, core.ActionFire)
}

func (km *KeyMapper) bind(key string, id core.PlayerID, action core.Action) {
	if key == "" {
		return
	}
	km.bindings[key] = binding{player: id, action: action}
}

// GlobalAction represents a session-level action not tied to a player.
type GlobalAction int

const (
	GlobalNone GlobalAction = iota
	GlobalPause
	GlobalRestart
	GlobalQuit
)

// MapGlobal translates a key message to a session-level action.
// Global keys take precedence over player bindings.
func (km *KeyMapper) MapGlobal(msg tea.KeyMsg) GlobalAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return GlobalQuit
	case "p":
		return GlobalPause
	case "r":
		return GlobalRestart
	}
	return GlobalNone
}

// MapKeyToFrame applies a key message to the multi-player input frame.
// Returns true if the key was bound to some player action.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	b, ok := km.bindings[msg.String()]
	if !ok {
		return false
	}
	frame.Set(b.player, b.action)
	return true
}
