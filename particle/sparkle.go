package particle

import "math"

// starUnit is an 8-point star of outer radius 1, alternating outer and
// inner vertices.
var starUnit = func() (pts [starVertices]Vec2) {
	for i := range pts {
		r := 1.0
		if i%2 == 1 {
			r = starInnerRatio
		}
		pts[i] = polar(float64(i)*math.Pi/starPoints, r)
	}
	return pts
}()

type sparkleState struct {
	rotation float64
	spin     float64
	phase    float64
	pts      [starVertices]Vec2
}

func initSparkle(p *Particle, _ *ParticleConfig, _ *Spawn, rng Rand) {
	p.sparkle.rotation = randomAngle(rng)
	p.sparkle.spin = rangeF(rng, -sparkleSpinMax, sparkleSpinMax)
	p.sparkle.phase = randomAngle(rng)
	p.Sparkle = true
	p.Vel = p.Vel.Scale(0.3)
	p.trail.configure(TrailSpec{})
}

// updateSparkle drifts and spins the star. The sine pulse stops at the
// fade threshold so opacity only falls from there on.
func updateSparkle(p *Particle, age float64) {
	s := &p.sparkle
	s.rotation += s.spin
	p.Vel = p.Vel.Scale(p.Friction)
	p.Pos = p.Pos.Add(p.Vel)

	pulse := sparklePulseMin
	if age/p.Lifetime < scoreFadeStart {
		pulse += (1 - sparklePulseMin) * (0.5 + 0.5*math.Sin(age*sparklePulse+s.phase))
	}
	p.alpha = linearAlpha(age, p.Lifetime) * pulse
}

func renderSparkle(p *Particle, c Canvas) {
	s := &p.sparkle
	sin, cos := math.Sincos(s.rotation)
	for i, u := range starUnit {
		s.pts[i] = Vec2{
			X: p.Pos.X + (u.X*cos-u.Y*sin)*p.Size,
			Y: p.Pos.Y + (u.X*sin+u.Y*cos)*p.Size,
		}
	}
	col := rgba(p.Color, p.alpha)
	if p.Glow {
		c.SetGlow(p.Size*glowRadiusFactor, col)
	}
	c.FillPolygon(s.pts[:], col)
	if p.Glow {
		c.SetGlow(0, col)
	}
}
