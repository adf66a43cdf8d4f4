package game

import (
	"time"

	"snakefx/particle"
)

// Config holds the demo configuration
type Config struct {
	// ScreenWidth is the initial window width in pixels
	ScreenWidth int

	// ScreenHeight is the initial window height in pixels
	ScreenHeight int

	// Columns and Rows size the snake board in cells
	Columns int
	Rows    int

	// TickMs is the simulated time one Update call advances
	TickMs float64

	// StepEvery is the number of ticks between snake moves
	StepEvery int

	// Seed feeds both the board layout and the particle RNG
	Seed uint64

	// Prewarm is the per-variant particle pool size
	Prewarm int

	// FrameBudget is the Update+Draw cost above which a frame counts as slow
	FrameBudget time.Duration

	// ProfileDir receives CPU profiles and traces captured on sustained overruns
	ProfileDir string

	// Autopilot steers the snake toward the nearest pickup
	Autopilot bool
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  800,
		ScreenHeight: 600,
		Columns:      20,
		Rows:         15,
		TickMs:       1000.0 / 60,
		StepEvery:    8,
		Seed:         1,
		Prewarm:      particle.DefaultPrewarm,
		FrameBudget:  4 * time.Millisecond,
		ProfileDir:   "profiles",
		Autopilot:    true,
	}
}
