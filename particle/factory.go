package particle

import (
	"io"
	"log"
	"math"
)

// Factory turns a semantic game event into a batch of initialized
// particles taken from the pool. It keeps no reference to a particle once
// the batch is returned.
type Factory struct {
	pool    *Pool
	catalog Catalog
	rng     Rand
	logger  *log.Logger

	spawned int
	skipped int

	// active effect kinds already reported as missing from the catalog
	reported map[string]bool
}

// NewFactory wires a factory. A nil catalog serves DefaultParticleConfig
// for every kind and a nil logger discards.
func NewFactory(pool *Pool, catalog Catalog, rng Rand, logger *log.Logger) *Factory {
	if catalog == nil {
		catalog = &StaticCatalog{}
	}
	if rng == nil {
		rng = NewRand(1)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Factory{pool: pool, catalog: catalog, rng: rng, logger: logger, reported: make(map[string]bool)}
}

// Spawned counts particles handed out since creation.
func (f *Factory) Spawned() int { return f.spawned }

// Skipped counts candidates dropped by validation since creation.
func (f *Factory) Skipped() int { return f.skipped }

// CreateFoodEffect appends the callout and burst of a collected food to
// dst. The burst shape depends on the tier: regular is a radial burst,
// bonus turns a third of it into orbit rings and golden adds a slow halo.
func (f *Factory) CreateFoodEffect(dst []*Particle, center Vec2, cellSize float64, foodType string, score, multiplier int, now float64) []*Particle {
	cfg := f.food(foodType)
	scale := BaseScale(cellSize)
	final := score * multiplier
	tier := tierFor(final)

	dst = f.spawn(dst, Score, &cfg, Spawn{
		Pos:      center,
		Now:      now,
		Lifetime: scoreLifetime,
		Scale:    scale,
		Score:    ScoreParams{Value: final},
	})

	count := int(float64(cfg.Count+max(final, 0)/scoreCountDivisor) * tier.countMul)
	count = min(count, MaxEffectParticles)

	var orbits, halo, sparkles int
	switch foodType {
	case FoodBonus:
		orbits = count / 3
		sparkles = bonusSparkles
	case FoodGolden:
		halo = goldenHaloCount
		count = min(count, MaxEffectParticles-halo)
		sparkles = goldenSparkles
	}

	orbit := orbitSpec(&cfg)
	dst = f.burst(dst, &cfg, center, count-orbits, scale, tier.sizeMul, cfg.Lifetime, now)
	dst = f.rings(dst, &cfg, center, orbits, orbit, scale, now)
	dst = f.halo(dst, &cfg, center, halo,
		orbit.Radius*goldenHaloRadius*scale, orbit.AngularSpeed*goldenHaloSpeed,
		scale, cfg.Lifetime, now)
	dst = f.sparkles(dst, &cfg, center, sparkles, orbit.Radius*scale, scale, now)
	return dst
}

// CreatePowerUpEffect appends Count burst particles in the power-up's
// palette and a fixed orbit halo. Lifetimes derive from Duration.
func (f *Factory) CreatePowerUpEffect(dst []*Particle, center Vec2, cellSize float64, kind string, now float64) []*Particle {
	cfg := f.powerUp(kind)
	scale := BaseScale(cellSize)
	life := cfg.Lifetime
	if cfg.Duration > 0 {
		life = Range{Min: cfg.Duration * powerUpLifetimeMin, Max: cfg.Duration}
	}
	orbit := orbitSpec(&cfg)

	dst = f.burst(dst, &cfg, center, cfg.Count, scale, 1, life, now)
	dst = f.halo(dst, &cfg, center, powerUpHaloCount, orbit.Radius*scale, orbit.AngularSpeed, scale, life, now)
	return dst
}

// EmitActive appends one rate-limited emission burst travelling inside a
// cone of width cfg.Spread around dir.
func (f *Factory) EmitActive(dst []*Particle, center Vec2, cellSize float64, cfg *ParticleConfig, dir Vec2, now float64) []*Particle {
	scale := BaseScale(cellSize)
	spread := cfg.Spread
	if spread <= 0 {
		spread = defaultSpread
	}
	if dir.IsZero() {
		dir = Vec2{Y: -1}
	}
	base := math.Atan2(dir.Y, dir.X)
	for i := 0; i < cfg.Count; i++ {
		dst = f.spawn(dst, ActiveEmission, cfg, Spawn{
			Pos:    center,
			Now:    now,
			Scale:  scale,
			Angle:  base,
			Jitter: spread / 2,
		})
	}
	return dst
}

func (f *Factory) food(kind string) ParticleConfig {
	if cfg, ok := f.catalog.Food(kind); ok {
		return cfg
	}
	f.logger.Printf("unknown food type %q, using defaults", kind)
	return DefaultParticleConfig()
}

func (f *Factory) powerUp(kind string) ParticleConfig {
	if cfg, ok := f.catalog.PowerUp(kind); ok {
		return cfg
	}
	f.logger.Printf("unknown power-up %q, using defaults", kind)
	return DefaultParticleConfig()
}

func (f *Factory) activeEffect(kind string) ParticleConfig {
	if cfg, ok := f.catalog.ActiveEffect(kind); ok {
		return cfg
	}
	// Called every frame while the effect is on; report the fallback once.
	if !f.reported[kind] {
		f.reported[kind] = true
		f.logger.Printf("unknown active effect %q, using defaults", kind)
	}
	return DefaultParticleConfig()
}

// spawn draws the values of one candidate and, when they pass, acquires
// and initializes a particle. A rejected candidate is only counted.
func (f *Factory) spawn(dst []*Particle, v Variant, cfg *ParticleConfig, s Spawn) []*Particle {
	d := drawValues(cfg, &s, f.rng)
	if validateCandidate(v, cfg, &d) != nil {
		f.skipped++
		return dst
	}
	p := f.pool.Acquire(v)
	p.initialize(cfg, s, d, f.rng)
	f.spawned++
	return append(dst, p)
}

// burst spreads n particles evenly around the circle with jitter of half
// a slot.
func (f *Factory) burst(dst []*Particle, cfg *ParticleConfig, center Vec2, n int, scale, sizeMul float64, life Range, now float64) []*Particle {
	if n <= 0 {
		return dst
	}
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		dst = f.spawn(dst, Burst, cfg, Spawn{
			Pos:      center,
			Now:      now,
			Lifetime: life.sample(f.rng),
			Scale:    scale,
			SizeMul:  sizeMul,
			Angle:    float64(i) * step,
			Jitter:   step / 2,
		})
	}
	return dst
}

// rings lays n orbit particles on concentric rings of orbitsPerRing,
// alternating direction per ring.
func (f *Factory) rings(dst []*Particle, cfg *ParticleConfig, center Vec2, n int, orbit OrbitSpec, scale, now float64) []*Particle {
	for i := 0; i < n; i++ {
		ring := i / orbitsPerRing
		slot := i % orbitsPerRing
		speed := orbit.AngularSpeed
		if ring%2 == 1 {
			speed = -speed
		}
		dst = f.spawn(dst, Orbit, cfg, Spawn{
			Pos:   center,
			Now:   now,
			Scale: scale,
			Orbit: OrbitParams{
				Center:       center,
				Radius:       (orbit.Radius + float64(ring)*orbit.RadiusStep) * scale,
				AngularSpeed: speed,
				Angle:        2*math.Pi*float64(slot)/orbitsPerRing + float64(ring)*math.Pi/orbitsPerRing,
			},
		})
	}
	return dst
}

// halo places n orbit particles evenly on a single ring.
func (f *Factory) halo(dst []*Particle, cfg *ParticleConfig, center Vec2, n int, radius, speed, scale float64, life Range, now float64) []*Particle {
	for i := 0; i < n; i++ {
		dst = f.spawn(dst, Orbit, cfg, Spawn{
			Pos:      center,
			Now:      now,
			Lifetime: life.sample(f.rng),
			Scale:    scale,
			Orbit: OrbitParams{
				Center:       center,
				Radius:       radius,
				AngularSpeed: speed,
				Angle:        2 * math.Pi * float64(i) / float64(n),
			},
		})
	}
	return dst
}

func (f *Factory) sparkles(dst []*Particle, cfg *ParticleConfig, center Vec2, n int, radius, scale, now float64) []*Particle {
	for i := 0; i < n; i++ {
		at := center.Add(polar(randomAngle(f.rng), rangeF(f.rng, 0, radius)))
		dst = f.spawn(dst, Sparkle, cfg, Spawn{
			Pos:      at,
			Now:      now,
			Lifetime: sparkleLifetime,
			Scale:    scale,
			Angle:    randomAngle(f.rng),
		})
	}
	return dst
}

// orbitSpec falls back to the default ring when the config leaves it unset.
func orbitSpec(cfg *ParticleConfig) OrbitSpec {
	if cfg.Orbit.Radius <= 0 && cfg.Orbit.AngularSpeed == 0 {
		return DefaultParticleConfig().Orbit
	}
	return cfg.Orbit
}
