package duel

import "github.com/nmelnik/bayduel/internal/core"

// Fixed ship stats.
const (
	MaxProjectiles = 5 // Shots a ship may have in flight at once
	StartHP        = 3
)

// Projectile is one shot in flight. A slot with Active false carries no
// meaningful position and is skipped by rendering and hit tests; slots
// are reused in index order once a shot deactivates.
type Projectile struct {
	X, Y   int
	DX, DY int
	Active bool
}

// Ship is one player's vessel: position, health, the velocity set for
// the current tick, and a fixed pool of projectile slots.
type Ship struct {
	X, Y        int
	HP          int
	VX, VY      int
	Projectiles [MaxProjectiles]Projectile
}

// NewShip places a ship at the given cell with full health and an
// empty projectile pool.
func NewShip(x, y int) Ship {
	s := Ship{X: x, Y: y, HP: StartHP}
	for i := range s.Projectiles {
		s.Projectiles[i] = Projectile{X: -1, Y: -1}
	}
	return s
}

// Alive reports whether the ship still has hit points.
func (s *Ship) Alive() bool {
	return s.HP > 0
}

// SetTickVelocity records the movement intent for this tick. Components
// are clamped to unit steps; nothing persists to the next tick.
func (s *Ship) SetTickVelocity(dx, dy int) {
	s.VX = core.Clamp(dx, -1, 1)
	s.VY = core.Clamp(dy, -1, 1)
}

// ApplyMovement moves the ship by its tick velocity. Stepping into a
// blocking cell costs one hit point and leaves the position unchanged;
// there is no damage cooldown, so holding a course into a wall drains
// health every tick. A zero velocity targets the ship's own cell,
// which is always open, so the call is a harmless no-op.
func (s *Ship) ApplyMovement(g *Grid) {
	nx, ny := s.X+s.VX, s.Y+s.VY
	if g.IsBlocking(nx, ny) {
		s.HP--
		return
	}
	s.X, s.Y = nx, ny
}

// Fire activates the first free projectile slot at the ship's position,
// heading (dx, dy). Returns false without changing anything when all
// slots are in flight; the dropped shot is deliberate backpressure,
// not an error.
func (s *Ship) Fire(dx, dy int) bool {
	for i := range s.Projectiles {
		p := &s.Projectiles[i]
		if p.Active {
			continue
		}
		*p = Projectile{X: s.X, Y: s.Y, DX: dx, DY: dy, Active: true}
		return true
	}
	return false
}

// AdvanceProjectiles moves every active projectile one cell along its
// direction. A shot whose next cell is blocking is consumed by the
// terrain. Slot order does not matter; shots are independent.
func (s *Ship) AdvanceProjectiles(g *Grid) {
	for i := range s.Projectiles {
		p := &s.Projectiles[i]
		if !p.Active {
			continue
		}
		nx, ny := p.X+p.DX, p.Y+p.DY
		if g.IsBlocking(nx, ny) {
			p.Active = false
			continue
		}
		p.X, p.Y = nx, ny
	}
}

// ActiveShots counts projectiles currently in flight.
func (s *Ship) ActiveShots() int {
	n := 0
	for i := range s.Projectiles {
		if s.Projectiles[i].Active {
			n++
		}
	}
	return n
}
