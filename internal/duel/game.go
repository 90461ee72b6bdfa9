// Package duel implements the bay duel simulation: two ships on a
// walled grid trading single-cell projectiles until one side's health
// runs out. The package is pure logic with no terminal dependencies;
// the platform layer feeds it per-tick input and renders its state.
package duel

import "github.com/nmelnik/bayduel/internal/core"

// spawns are the fixed opposite-corner starting cells for the two ships.
var spawns = [2][2]int{
	{2, 2},
	{MapWidth - 3, MapHeight - 3},
}

// Intent is one ship's resolved input for a single tick: a unit
// movement vector plus an already-debounced fire flag. The platform
// handles press-edge detection; by the time an Intent reaches the
// simulation, Fire means "spawn one shot now".
type Intent struct {
	DX, DY int
	Fire   bool
}

// Game is a whole match: two ships, the bay, and terminal state.
// A single Game value is owned by the presentation layer and mutated
// only through Step; once the match is over no further Step changes
// anything, though the state stays readable for rendering.
type Game struct {
	ships  [2]Ship
	grid   *Grid
	tick   uint64
	over   bool
	tie    bool
	winner core.PlayerID // 0 while running and on a tie
	paused bool
}

// New creates a fresh match ready to play.
func New() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// ID returns the game identifier used for persistence.
func (g *Game) ID() string {
	return "bayduel"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Bay Duel"
}

// Reset initializes or restarts the match. The layout and ship stats
// are compile-time constants, so no configuration is consulted.
func (g *Game) Reset() {
	g.grid = NewGrid()
	g.ships[0] = NewShip(spawns[0][0], spawns[0][1])
	g.ships[1] = NewShip(spawns[1][0], spawns[1][1])
	g.tick = 0
	g.over = false
	g.tie = false
	g.winner = 0
	g.paused = false
}

// Step advances the simulation one tick using both players' input.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if in.Player1Frame().Has(core.ActionPause) || in.Player2Frame().Has(core.ActionPause) {
		if !g.over {
			g.paused = !g.paused
		}
	}
	if g.over || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.StepIntents(intentFrom(in.Player1Frame()), intentFrom(in.Player2Frame()))
	return core.StepResult{State: g.State()}
}

// StepIntents runs one tick from pre-resolved intents. Split out from
// Step so tests can drive exact movement vectors. Order within the
// tick: movement, firing, projectile advance, hit resolution, terminal
// check.
func (g *Game) StepIntents(p1, p2 Intent) {
	if g.over {
		return
	}
	g.tick++
	intents := [2]Intent{p1, p2}

	// Movement and terrain collision. Ships never block each other and
	// may share a cell, so the order between the two is irrelevant.
	for i := range g.ships {
		g.ships[i].SetTickVelocity(intents[i].DX, intents[i].DY)
		g.ships[i].ApplyMovement(g.grid)
	}

	// Firing. A stationary ship shoots upward.
	for i := range g.ships {
		if !intents[i].Fire {
			continue
		}
		dx, dy := g.ships[i].VX, g.ships[i].VY
		if dx == 0 && dy == 0 {
			dy = -1
		}
		g.ships[i].Fire(dx, dy)
	}

	for i := range g.ships {
		g.ships[i].AdvanceProjectiles(g.grid)
	}

	// Both directions run every tick, so a mutual kill lands as a tie
	// instead of crowning whoever happened to be checked first.
	g.resolveHits(&g.ships[0], &g.ships[1])
	g.resolveHits(&g.ships[1], &g.ships[0])

	g.checkTerminal()
}

// resolveHits applies the attacker's projectiles against the target.
// Only the opposing ship is ever tested, so a shot can never wound its
// owner.
func (g *Game) resolveHits(attacker, target *Ship) {
	for i := range attacker.Projectiles {
		p := &attacker.Projectiles[i]
		if p.Active && p.X == target.X && p.Y == target.Y {
			target.HP--
			p.Active = false
		}
	}
}

func (g *Game) checkTerminal() {
	hp1, hp2 := g.ships[0].HP, g.ships[1].HP
	if hp1 > 0 && hp2 > 0 {
		return
	}
	g.over = true
	switch {
	case hp1 <= 0 && hp2 <= 0:
		g.tie = true
	case hp2 <= 0:
		g.winner = core.Player1
	default:
		g.winner = core.Player2
	}
}

// intentFrom resolves an action frame to a movement vector and fire
// flag. Opposite directions within one frame resolve up-over-down and
// left-over-right; terminal key events arrive discretely, so the case
// only occurs when both keys land between two ticks.
func intentFrom(f core.InputFrame) Intent {
	var in Intent
	switch {
	case f.Has(core.ActionUp):
		in.DY = -1
	case f.Has(core.ActionDown):
		in.DY = 1
	}
	switch {
	case f.Has(core.ActionLeft):
		in.DX = -1
	case f.Has(core.ActionRight):
		in.DX = 1
	}
	in.Fire = f.Has(core.ActionFire)
	return in
}

// Ship returns the ship for the given player. The struct persists
// after the match ends so the final state can still be rendered.
func (g *Game) Ship(id core.PlayerID) *Ship {
	return &g.ships[id-core.Player1]
}

// Grid returns the static terrain.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Tick returns the number of simulation ticks run so far.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Over reports whether the match has ended.
func (g *Game) Over() bool {
	return g.over
}

// Tie reports whether both ships were destroyed the same tick.
func (g *Game) Tie() bool {
	return g.tie
}

// Winner returns the winning side, or 0 while running or on a tie.
func (g *Game) Winner() core.PlayerID {
	return g.winner
}

// Paused reports whether the match is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// State returns the current match state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.over,
		Paused:   g.paused,
		Tie:      g.tie,
		Winner:   g.winner,
	}
}
