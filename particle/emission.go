package particle

// emitter rate-limits one active effect. It belongs to the System, not to
// any particle.
type emitter struct {
	last   float64
	primed bool
}

// ready reports whether interval ms have passed since the last emission
// and, if so, records now as the new emission time.
func (e *emitter) ready(now, interval float64) bool {
	if interval <= 0 {
		interval = defaultEmitInterval
	}
	if e.primed && now-e.last < interval {
		return false
	}
	e.last = now
	e.primed = true
	return true
}
