package duel

import "github.com/nmelnik/bayduel/internal/core"

// ProjectileSnapshot mirrors one projectile slot in primitive fields.
type ProjectileSnapshot struct {
	X, Y   int
	DX, DY int
	Active bool
}

// ShipSnapshot mirrors one ship's state in primitive fields.
type ShipSnapshot struct {
	X, Y        int
	HP          int
	Projectiles [MaxProjectiles]ProjectileSnapshot
}

// Snapshot is the complete match state in comparable primitive fields.
// Two identical input sequences must yield identical snapshots; the
// determinism test relies on plain == comparison.
type Snapshot struct {
	Tick   uint64
	Ships  [2]ShipSnapshot
	Over   bool
	Tie    bool
	Winner core.PlayerID
}

// Snapshot captures the current match state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   g.tick,
		Over:   g.over,
		Tie:    g.tie,
		Winner: g.winner,
	}
	for i := range g.ships {
		s := &g.ships[i]
		snap.Ships[i] = ShipSnapshot{X: s.X, Y: s.Y, HP: s.HP}
		for j := range s.Projectiles {
			p := s.Projectiles[j]
			snap.Ships[i].Projectiles[j] = ProjectileSnapshot{
				X: p.X, Y: p.Y, DX: p.DX, DY: p.DY, Active: p.Active,
			}
		}
	}
	return snap
}
