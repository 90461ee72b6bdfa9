package core

// RuntimeConfig contains configuration passed from the platform layer
// at initialization. Games use it to adapt to screen size; the tick
// rate drives the platform's frame loop, not the simulation itself
// (one Step is always exactly one tick).
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState communicates the simulation's status to the platform.
type GameState struct {
	GameOver bool     // Whether the match has ended
	Paused   bool     // Whether the match is paused
	Tie      bool     // Both ships destroyed the same tick
	Winner   PlayerID // Winning side, 0 while running or on a tie
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
