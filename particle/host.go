package particle

// StepClock is a Clock advanced by the host loop, one fixed step per frame.
// Tick is a no-op while paused so particle ages freeze with the game.
type StepClock struct {
	now    float64
	step   float64
	paused bool
}

// NewStepClock returns a clock reading start ms that advances step ms per Tick.
func NewStepClock(start, step float64) *StepClock {
	return &StepClock{now: start, step: step}
}

func (c *StepClock) Now() float64 { return c.now }

// Tick advances the clock by one step and returns the new time.
func (c *StepClock) Tick() float64 {
	if !c.paused {
		c.now += c.step
	}
	return c.now
}

// Advance moves the clock forward by ms, ignoring pause and negative values.
func (c *StepClock) Advance(ms float64) {
	if ms > 0 {
		c.now += ms
	}
}

func (c *StepClock) SetPaused(paused bool) { c.paused = paused }

func (c *StepClock) Paused() bool { return c.paused }

// FixedGrid lays square cells out from Origin.
type FixedGrid struct {
	Origin Vec2
	Cell   float64
}

func (g FixedGrid) CellCenter(pos GridPos) Vec2 {
	return Vec2{
		X: g.Origin.X + (float64(pos.X)+0.5)*g.Cell,
		Y: g.Origin.Y + (float64(pos.Y)+0.5)*g.Cell,
	}
}

func (g FixedGrid) CellSize() float64 { return g.Cell }
