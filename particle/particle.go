package particle

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Particle is a single pooled animated element. The envelope fields are
// shared by every variant; orbit, score and sparkle hold the payload of
// the matching variant only.
type Particle struct {
	Pos      Vec2
	Vel      Vec2
	Size     float64
	Color    colorful.Color
	Born     float64 // host clock, ms
	Lifetime float64 // ms
	Gravity  float64
	Friction float64
	Scale    float64 // BaseScale frozen at spawn

	Glow    bool
	Sparkle bool
	Pulse   bool

	variant  Variant
	pooled   bool
	baseSize float64
	alpha    float64
	trail    trail

	orbit   orbitState
	score   scoreState
	sparkle sparkleState
}

// Spawn carries the per-particle values the factory resolves before
// Initialize. Zero Lifetime, Scale and SizeMul fall back to the config
// range, 1 and 1.
type Spawn struct {
	Pos      Vec2
	Now      float64
	Lifetime float64
	Scale    float64
	SizeMul  float64
	Angle    float64 // launch heading in radians
	Jitter   float64 // uniform +/- offset added to Angle

	Orbit OrbitParams
	Score ScoreParams
}

// OrbitParams places an Orbit particle on its ring.
type OrbitParams struct {
	Center       Vec2
	Radius       float64
	AngularSpeed float64
	Angle        float64
}

// ScoreParams configures a Score callout.
type ScoreParams struct {
	Value    int
	FontSize float64 // 0 derives it from scale and tier
}

// Variant reports the kind this particle was allocated for.
func (p *Particle) Variant() Variant { return p.variant }

// Age returns milliseconds since spawn, never negative.
func (p *Particle) Age(now float64) float64 {
	if now < p.Born {
		return 0
	}
	return now - p.Born
}

// Alive reports whether the particle is still within its lifetime.
func (p *Particle) Alive(now float64) bool {
	return p.Age(now) < p.Lifetime
}

// Alpha is the opacity computed by the last Update, in [0, 255].
func (p *Particle) Alpha() float64 { return p.alpha }

// Text returns the callout of a Score particle and "" otherwise.
func (p *Particle) Text() string { return p.score.text }

// OrbitCenter and OrbitRadius expose the ring of an Orbit particle.
func (p *Particle) OrbitCenter() Vec2 { return p.orbit.center }

func (p *Particle) OrbitRadius() float64 { return p.orbit.radius }

// TrailLen is the number of recorded trail points.
func (p *Particle) TrailLen() int { return p.trail.n }

// draws are the randomized values of one candidate. The factory resolves
// them before acquiring from the pool so a rejected candidate costs nothing.
type draws struct {
	lifetime float64
	size     float64
	speed    float64
	color    colorful.Color
}

func drawValues(cfg *ParticleConfig, s *Spawn, rng Rand) draws {
	scale := s.Scale
	if scale <= 0 {
		scale = 1
	}
	sizeMul := s.SizeMul
	if sizeMul <= 0 {
		sizeMul = 1
	}
	d := draws{lifetime: s.Lifetime}
	if d.lifetime <= 0 {
		d.lifetime = cfg.Lifetime.sample(rng)
	}
	if d.lifetime <= 0 {
		d.lifetime = DefaultParticleConfig().Lifetime.Max
	}
	d.size = cfg.Size.sample(rng) * scale * sizeMul
	d.color = cfg.Palette.pick(rng)
	d.speed = cfg.Speed.sample(rng) * scale
	return d
}

// Initialize resolves randomized ranges from cfg and sets the envelope
// and variant payload. Repeated calls on a reused particle draw fresh
// values from rng.
func (p *Particle) Initialize(cfg *ParticleConfig, s Spawn, rng Rand) {
	p.initialize(cfg, s, drawValues(cfg, &s, rng), rng)
}

func (p *Particle) initialize(cfg *ParticleConfig, s Spawn, d draws, rng Rand) {
	p.Scale = s.Scale
	if p.Scale <= 0 {
		p.Scale = 1
	}
	p.Pos = s.Pos
	p.Born = s.Now
	p.Lifetime = d.lifetime
	p.Size = d.size
	p.baseSize = p.Size
	p.Color = d.color
	p.Gravity = cfg.Gravity
	p.Friction = cfg.Friction
	if p.Friction <= 0 {
		p.Friction = DefaultFriction
	}
	p.Glow = cfg.Glow
	p.Pulse = cfg.Pulse

	angle := s.Angle + rangeF(rng, -s.Jitter, s.Jitter)
	p.Vel = polar(angle, d.speed)
	p.alpha = 255

	variantTable[p.variant].init(p, cfg, &s, rng)
}

// Update advances the particle one frame. It returns false once the age
// reaches the lifetime; the caller then recycles the particle.
func (p *Particle) Update(now float64) bool {
	age := p.Age(now)
	if age >= p.Lifetime {
		return false
	}
	variantTable[p.variant].update(p, age)
	return true
}

// Render draws the particle with the state computed by the last Update.
func (p *Particle) Render(c Canvas) {
	if p.alpha <= 0 {
		return
	}
	variantTable[p.variant].render(p, c)
}

// Reset clears every field except the variant tag so nothing leaks into
// the next use.
func (p *Particle) Reset() {
	*p = Particle{variant: p.variant}
}

func linearAlpha(age, lifetime float64) float64 {
	return clampF(255*(1-age/lifetime), 0, 255)
}

// renderDot draws the particle body with an optional glow halo.
func renderDot(p *Particle, c Canvas) {
	col := rgba(p.Color, p.alpha)
	if p.Glow {
		c.SetGlow(p.Size*glowRadiusFactor, col)
	}
	c.FillCircle(p.Pos, p.Size, col)
	if p.Glow {
		c.SetGlow(0, color.NRGBA{})
	}
}
