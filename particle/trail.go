package particle

// trail is a fixed ring buffer of recent positions, newest first when read.
type trail struct {
	buf    [MaxTrailLength]Vec2
	head   int // next write slot
	n      int
	length int
	decay  float64
}

func (t *trail) configure(spec TrailSpec) {
	t.length = spec.Length
	if t.length > MaxTrailLength {
		t.length = MaxTrailLength
	}
	if t.length < 0 {
		t.length = 0
	}
	t.decay = spec.Decay
	t.head, t.n = 0, 0
}

func (t *trail) push(v Vec2) {
	if t.length == 0 {
		return
	}
	t.buf[t.head] = v
	t.head = (t.head + 1) % t.length
	if t.n < t.length {
		t.n++
	}
}

// at returns the i-th most recent point.
func (t *trail) at(i int) Vec2 {
	idx := (t.head - 1 - i) % t.length
	if idx < 0 {
		idx += t.length
	}
	return t.buf[idx]
}
