// Package particle is the pooled visual-effects engine of the snake board.
//
// Game events (food eaten, power-up collected, an ongoing status effect) are
// turned into batches of short-lived particles. Particles are recycled
// through a Pool keyed by Variant, advanced once per frame by a System and
// drawn onto an abstract Canvas supplied by the host.
//
// Everything runs on the host's render goroutine; nothing in this package
// locks, blocks or reads the wall clock. Ages are measured against a
// monotonic millisecond Clock owned by the host, so pausing the host pauses
// every effect.
//
// Usage:
//
//	sys := particle.NewSystem(grid, clock, particle.DefaultSystemConfig())
//	sys.CreateFoodEffect(particle.GridPos{X: 5, Y: 5}, particle.FoodGolden, 10, 2)
//
//	// once per frame
//	sys.Update()
//	sys.Draw(canvas)
package particle
