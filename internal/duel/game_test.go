package duel

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/nmelnik/bayduel/internal/core"
)

func TestNewGamePlacesShipsAtOppositeCorners(t *testing.T) {
	g := New()

	s1 := g.Ship(core.Player1)
	if s1.X != 2 || s1.Y != 2 {
		t.Errorf("Player 1 spawn = (%d, %d), expected (2, 2)", s1.X, s1.Y)
	}
	s2 := g.Ship(core.Player2)
	if s2.X != 17 || s2.Y != 7 {
		t.Errorf("Player 2 spawn = (%d, %d), expected (17, 7)", s2.X, s2.Y)
	}

	if s1.HP != StartHP || s2.HP != StartHP {
		t.Errorf("Ships should start with %d HP, got %d and %d", StartHP, s1.HP, s2.HP)
	}
	if g.Over() {
		t.Error("New game should not be over")
	}
}

func TestStandstillShotHitsTopWall(t *testing.T) {
	// Ship A fires from standstill at (2, 2): direction defaults to
	// up, the shot travels (2,2) -> (2,1), is blocked by wall row 0,
	// and deactivates without ever reaching ship B.
	g := New()

	g.StepIntents(Intent{Fire: true}, Intent{})

	p := g.Ship(core.Player1).Projectiles[0]
	if !p.Active || p.X != 2 || p.Y != 1 {
		t.Fatalf("After step 1 the shot should be active at (2, 1), got %+v", p)
	}
	if p.DX != 0 || p.DY != -1 {
		t.Errorf("Standstill shot should default upward, got direction (%d, %d)", p.DX, p.DY)
	}

	g.StepIntents(Intent{}, Intent{})
	g.StepIntents(Intent{}, Intent{})

	if g.Ship(core.Player1).Projectiles[0].Active {
		t.Error("Shot should be consumed by the top wall")
	}
	if g.Ship(core.Player1).HP != StartHP || g.Ship(core.Player2).HP != StartHP {
		t.Error("No health should change")
	}
	if g.Over() {
		t.Error("Match should still be running")
	}
}

func TestMovingShotInheritsVelocity(t *testing.T) {
	g := New()

	g.StepIntents(Intent{DX: 1, Fire: true}, Intent{})

	// Ship moved (2,2) -> (3,2); shot spawned there and advanced once.
	p := g.Ship(core.Player1).Projectiles[0]
	if !p.Active || p.X != 4 || p.Y != 2 {
		t.Errorf("Shot should be at (4, 2), got %+v", p)
	}
	if p.DX != 1 || p.DY != 0 {
		t.Errorf("Shot direction should be (1, 0), got (%d, %d)", p.DX, p.DY)
	}
}

func TestProjectileHitReducesOpponentHealth(t *testing.T) {
	g := New()
	b := g.Ship(core.Player2)

	// Plant A's shot one cell left of B, heading right.
	a := g.Ship(core.Player1)
	a.Projectiles[0] = Projectile{X: b.X - 1, Y: b.Y, DX: 1, DY: 0, Active: true}

	g.StepIntents(Intent{}, Intent{})

	if b.HP != StartHP-1 {
		t.Errorf("B should lose exactly 1 HP, got %d", b.HP)
	}
	if a.Projectiles[0].Active {
		t.Error("A hit consumes the projectile")
	}
	if g.Over() {
		t.Error("A single hit should not end the match")
	}
}

func TestHitExclusivity(t *testing.T) {
	// A's own projectile crossing A's cell never wounds A.
	g := New()
	a := g.Ship(core.Player1)

	a.Projectiles[0] = Projectile{X: a.X - 1, Y: a.Y, DX: 1, DY: 0, Active: true}

	g.StepIntents(Intent{}, Intent{})

	if a.HP != StartHP {
		t.Errorf("Own shot on own cell must be harmless, HP = %d", a.HP)
	}
	p := a.Projectiles[0]
	if !p.Active || p.X != a.X || p.Y != a.Y {
		t.Errorf("Shot should pass through its owner's cell, got %+v", p)
	}
}

func TestTieWhenBothShipsDestroyedSameTick(t *testing.T) {
	g := New()
	a := g.Ship(core.Player1)
	b := g.Ship(core.Player2)

	a.HP = 1
	b.HP = 1
	a.Projectiles[0] = Projectile{X: b.X - 1, Y: b.Y, DX: 1, DY: 0, Active: true}
	b.Projectiles[0] = Projectile{X: a.X + 1, Y: a.Y, DX: -1, DY: 0, Active: true}

	g.StepIntents(Intent{}, Intent{})

	if a.HP != 0 || b.HP != 0 {
		t.Fatalf("Both ships should be at 0 HP, got %d and %d", a.HP, b.HP)
	}
	if !g.Over() {
		t.Error("Match should be over")
	}
	if !g.Tie() {
		t.Error("Mutual destruction must be reported as a tie")
	}
	if g.Winner() != 0 {
		t.Errorf("A tie has no winner, got %v", g.Winner())
	}
}

func TestWinnerOnKnockout(t *testing.T) {
	g := New()
	b := g.Ship(core.Player2)
	b.HP = 1

	g.Ship(core.Player1).Projectiles[0] = Projectile{X: b.X - 1, Y: b.Y, DX: 1, DY: 0, Active: true}

	g.StepIntents(Intent{}, Intent{})

	if !g.Over() {
		t.Fatal("Match should be over")
	}
	if g.Tie() {
		t.Error("Knockout is not a tie")
	}
	if g.Winner() != core.Player1 {
		t.Errorf("Winner should be Player 1, got %v", g.Winner())
	}
	if b.Alive() {
		t.Error("Ship B should be destroyed")
	}
}

func TestTerminalFreeze(t *testing.T) {
	g := New()
	b := g.Ship(core.Player2)
	b.HP = 1
	g.Ship(core.Player1).Projectiles[0] = Projectile{X: b.X - 1, Y: b.Y, DX: 1, DY: 0, Active: true}
	g.StepIntents(Intent{}, Intent{})

	if !g.Over() {
		t.Fatal("Setup should end the match")
	}
	frozen := g.Snapshot()

	// Further steps, with and without input, must change nothing.
	g.StepIntents(Intent{DX: 1, DY: 1, Fire: true}, Intent{DX: -1, Fire: true})
	in := core.NewMultiInputFrame()
	in.Set(core.Player1, core.ActionFire)
	in.Set(core.Player2, core.ActionDown)
	g.Step(in)

	if g.Snapshot() != frozen {
		t.Error("State must be frozen after the match ends")
	}
}

func TestBoundaryContainment(t *testing.T) {
	// Whatever inputs arrive, a ship's cell is always open water.
	g := New()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500 && !g.Over(); i++ {
		p1 := Intent{DX: rng.Intn(3) - 1, DY: rng.Intn(3) - 1, Fire: rng.Intn(4) == 0}
		p2 := Intent{DX: rng.Intn(3) - 1, DY: rng.Intn(3) - 1, Fire: rng.Intn(4) == 0}
		g.StepIntents(p1, p2)

		for _, id := range []core.PlayerID{core.Player1, core.Player2} {
			s := g.Ship(id)
			if g.Grid().Classify(s.X, s.Y) != CellOpen {
				t.Fatalf("Tick %d: %s at (%d, %d) is not on open water", i, id, s.X, s.Y)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Two matches fed the same intent script end in identical states.
	script := func(g *Game) {
		for i := 0; i < 200; i++ {
			var p1, p2 Intent
			switch {
			case i%7 == 0:
				p1 = Intent{DX: 1, Fire: true}
			case i%5 == 0:
				p1 = Intent{DY: 1}
			case i%3 == 0:
				p2 = Intent{DX: -1, Fire: true}
			}
			g.StepIntents(p1, p2)
		}
	}

	g1 := New()
	g2 := New()
	script(g1)
	script(g2)

	if g1.Snapshot() != g2.Snapshot() {
		t.Error("Identical input scripts must produce identical snapshots")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New()

	in := core.NewMultiInputFrame()
	in.Set(core.Player1, core.ActionPause)
	result := g.Step(in)
	if !result.State.Paused {
		t.Fatal("Pause action should pause the match")
	}
	before := g.Snapshot()

	in = core.NewMultiInputFrame()
	in.Set(core.Player1, core.ActionRight)
	in.Set(core.Player2, core.ActionFire)
	g.Step(in)

	if g.Snapshot() != before {
		t.Error("Paused match must not advance")
	}

	in = core.NewMultiInputFrame()
	in.Set(core.Player2, core.ActionPause)
	result = g.Step(in)
	if result.State.Paused {
		t.Error("Either player's pause action should unpause")
	}
}

func TestStepDerivesIntentsFromActions(t *testing.T) {
	g := New()

	in := core.NewMultiInputFrame()
	in.Set(core.Player1, core.ActionRight)
	in.Set(core.Player1, core.ActionFire)
	in.Set(core.Player2, core.ActionUp)
	g.Step(in)

	s1 := g.Ship(core.Player1)
	if s1.X != 3 || s1.Y != 2 {
		t.Errorf("Player 1 should move right to (3, 2), got (%d, %d)", s1.X, s1.Y)
	}
	p := s1.Projectiles[0]
	if !p.Active || p.DX != 1 || p.DY != 0 {
		t.Errorf("Player 1 shot should head right, got %+v", p)
	}

	s2 := g.Ship(core.Player2)
	if s2.X != 17 || s2.Y != 6 {
		t.Errorf("Player 2 should move up to (17, 6), got (%d, %d)", s2.X, s2.Y)
	}
}

func TestOppositeKeysResolveDeterministically(t *testing.T) {
	f := core.NewInputFrame()
	f.Set(core.ActionUp)
	f.Set(core.ActionDown)
	f.Set(core.ActionLeft)
	f.Set(core.ActionRight)

	in := intentFrom(f)
	if in.DY != -1 {
		t.Errorf("Up should win over down, got DY = %d", in.DY)
	}
	if in.DX != -1 {
		t.Errorf("Left should win over right, got DX = %d", in.DX)
	}
}

func TestRestartResetsMatch(t *testing.T) {
	g := New()
	b := g.Ship(core.Player2)
	b.HP = 1
	g.Ship(core.Player1).Projectiles[0] = Projectile{X: b.X - 1, Y: b.Y, DX: 1, DY: 0, Active: true}
	g.StepIntents(Intent{}, Intent{})

	if !g.Over() {
		t.Fatal("Setup should end the match")
	}

	g.Reset()

	if g.Over() || g.Tick() != 0 {
		t.Error("Reset should produce a fresh match")
	}
	if g.Snapshot() != New().Snapshot() {
		t.Error("Reset state should equal a newly created game")
	}
}

func TestRenderShowsShipsAndBanner(t *testing.T) {
	g := New()
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !containsRune(screen, 'A') || !containsRune(screen, 'B') {
		t.Errorf("Both ships should be rendered:\n%s", out)
	}

	// Destroy B and check the banner.
	g.Ship(core.Player2).HP = 1
	b := g.Ship(core.Player2)
	g.Ship(core.Player1).Projectiles[0] = Projectile{X: b.X - 1, Y: b.Y, DX: 1, DY: 0, Active: true}
	g.StepIntents(Intent{}, Intent{})

	g.Render(screen)
	if !containsText(screen, "GAME OVER! Winner: Player 1") {
		t.Errorf("Winner banner missing:\n%s", screen.String())
	}
}

func containsRune(s *core.Screen, r rune) bool {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) == r {
				return true
			}
		}
	}
	return false
}

func containsText(s *core.Screen, text string) bool {
	for y := 0; y < s.Height(); y++ {
		if strings.Contains(s.Row(y), text) {
			return true
		}
	}
	return false
}
