package particle

// Pool keeps one free-list per variant. A particle is at any time either
// on a free-list or owned by a System's active list, never both.
type Pool struct {
	free      [variantCount][]*Particle
	allocated [variantCount]int
}

// NewPool pre-warms every free-list with prewarm particles.
func NewPool(prewarm int) *Pool {
	if prewarm < 0 {
		prewarm = 0
	}
	p := &Pool{}
	for v := Variant(0); v < variantCount; v++ {
		p.free[v] = make([]*Particle, 0, prewarm)
		for i := 0; i < prewarm; i++ {
			pt := p.allocate(v)
			pt.pooled = true
			p.free[v] = append(p.free[v], pt)
		}
	}
	return p
}

func (p *Pool) allocate(v Variant) *Particle {
	p.allocated[v]++
	return &Particle{variant: v}
}

// Acquire returns a free particle of variant v, allocating only when the
// free-list is empty. Unknown variants are served as Burst.
func (p *Pool) Acquire(v Variant) *Particle {
	if !v.Valid() {
		v = Burst
	}
	list := p.free[v]
	n := len(list)
	if n == 0 {
		return p.allocate(v)
	}
	pt := list[n-1]
	list[n-1] = nil
	p.free[v] = list[:n-1]
	pt.pooled = false
	return pt
}

// Release resets pt and returns it to its free-list. Releasing a particle
// that is already pooled is a no-op.
func (p *Pool) Release(pt *Particle) {
	if pt == nil || pt.pooled {
		return
	}
	pt.Reset()
	pt.pooled = true
	p.free[pt.variant] = append(p.free[pt.variant], pt)
}

// Free is the number of idle particles of variant v.
func (p *Pool) Free(v Variant) int {
	if !v.Valid() {
		return 0
	}
	return len(p.free[v])
}

// Allocated is the number of particles of variant v ever created.
func (p *Pool) Allocated(v Variant) int {
	if !v.Valid() {
		return 0
	}
	return p.allocated[v]
}

// TotalFree sums Free over all variants.
func (p *Pool) TotalFree() int {
	n := 0
	for v := range p.free {
		n += len(p.free[v])
	}
	return n
}

// TotalAllocated sums Allocated over all variants.
func (p *Pool) TotalAllocated() int {
	n := 0
	for _, a := range p.allocated {
		n += a
	}
	return n
}
