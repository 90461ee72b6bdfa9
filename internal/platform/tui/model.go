package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmelnik/bayduel/internal/core"
	"github.com/nmelnik/bayduel/internal/duel"
	"github.com/nmelnik/bayduel/internal/storage"
)

// Model is the Bubble Tea model for running a duel match.
type Model struct {
	game        *duel.Game
	screen      *core.Screen
	store       *storage.Store
	keys        *KeyMapper
	config      core.RuntimeConfig
	input       core.MultiInputFrame
	gameState   core.GameState
	prevFire    [2]bool // Fire state last tick, for edge-triggering
	quitting    bool
	resultSaved bool // Whether the result has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *duel.Game, store *storage.Store, keys *KeyMapper, cfg core.RuntimeConfig) Model {
	game.Reset()

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		keys:   keys,
		config: cfg,
		input:  core.NewMultiInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Session-level keys take
// precedence; everything else goes through the configured bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapGlobal(msg) {
	case GlobalQuit:
		m.quitting = true
		return m, tea.Quit
	case GlobalPause:
		m.input.Set(core.Player1, core.ActionPause)
		return m, nil
	case GlobalRestart:
		if m.gameState.GameOver {
			m.input.Set(core.Player1, core.ActionRestart)
		}
		return m, nil
	}

	m.keys.MapKeyToFrame(msg, &m.input)
	return m, nil
}

// handleResize processes window resize events. Only the screen buffer
// changes; the simulation grid is fixed and the renderer re-centers it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.input.Player1Frame().Has(core.ActionRestart) && m.gameState.GameOver {
		m.game.Reset()
		m.gameState = m.game.State()
		m.resultSaved = false
		m.prevFire = [2]bool{}
		m.input.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Edge-trigger fire: a held key repeats, but each launch needs a
	// fresh press. Suppress fire while the key stays down.
	m.debounceFire(core.Player1, 0)
	m.debounceFire(core.Player2, 1)

	result := m.game.Step(m.input)
	m.gameState = result.State

	// Save the result on game over (once)
	if m.gameState.GameOver && !m.resultSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveMatch(
				matchWinner(m.gameState),
				m.game.Ship(core.Player1).HP,
				m.game.Ship(core.Player2).HP,
				int(m.game.Tick()),
			)
		}
		m.resultSaved = true
	}

	// Clear input for next frame
	m.input.Clear()

	return m, tickCmd(m.config.TickRate)
}

// debounceFire suppresses a player's fire action while the key is held.
func (m *Model) debounceFire(id core.PlayerID, idx int) {
	raw := m.input.Player(id).Has(core.ActionFire)
	if raw && m.prevFire[idx] {
		frame := m.input.Player(id)
		frame.Unset(core.ActionFire)
		m.input.SetPlayer(id, frame)
	}
	m.prevFire[idx] = raw
}

// matchWinner maps a terminal game state to a storage winner value.
func matchWinner(state core.GameState) string {
	if state.Tie {
		return storage.WinnerTie
	}
	if state.Winner == core.Player1 {
		return storage.WinnerPlayer1
	}
	return storage.WinnerPlayer2
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *duel.Game, store *storage.Store, keys *KeyMapper, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, keys, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
