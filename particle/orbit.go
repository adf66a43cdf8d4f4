package particle

import "math"

type orbitState struct {
	center       Vec2
	radius       float64
	angularSpeed float64
	angle        float64
}

func initOrbit(p *Particle, _ *ParticleConfig, s *Spawn, _ Rand) {
	p.orbit = orbitState{
		center:       s.Orbit.Center,
		radius:       s.Orbit.Radius,
		angularSpeed: s.Orbit.AngularSpeed,
		angle:        s.Orbit.Angle,
	}
	p.Vel = Vec2{}
}

// updateOrbit recomputes the position from the angle every frame so no
// integration error accumulates.
func updateOrbit(p *Particle, age float64) {
	o := &p.orbit
	o.angle = math.Mod(o.angle+o.angularSpeed, 2*math.Pi)
	p.Pos = o.center.Add(polar(o.angle, o.radius))
	p.alpha = linearAlpha(age, p.Lifetime)
	if p.Pulse {
		p.Size = p.baseSize * (1 + math.Sin(age*pulseRate)*pulseAmount)
	}
}
