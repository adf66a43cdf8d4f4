package particle

import "math"

func initBallistic(p *Particle, cfg *ParticleConfig, _ *Spawn, _ Rand) {
	p.trail.configure(cfg.Trail)
}

// initEmission is ballistic without a trail; emitted particles are short
// and numerous.
func initEmission(p *Particle, _ *ParticleConfig, _ *Spawn, _ Rand) {
	p.trail.configure(TrailSpec{})
}

func updateBallistic(p *Particle, age float64) {
	p.trail.push(p.Pos)
	p.Vel.Y += p.Gravity * p.Scale
	p.Vel = p.Vel.Scale(p.Friction)
	p.Pos = p.Pos.Add(p.Vel)
	p.alpha = linearAlpha(age, p.Lifetime)
	if p.Pulse {
		p.Size = p.baseSize * (1 + math.Sin(age*pulseRate)*pulseAmount)
	}
}

func renderBallistic(p *Particle, c Canvas) {
	// Oldest points first so the head is painted over its trail.
	for i := p.trail.n - 1; i >= 0; i-- {
		a := p.alpha * math.Pow(p.trail.decay, float64(i+1))
		r := p.Size * (1 - float64(i+1)/float64(p.trail.n+1))
		if a < 1 || r <= 0 {
			continue
		}
		c.FillCircle(p.trail.at(i), r, rgba(p.Color, a))
	}
	renderDot(p, c)
}
