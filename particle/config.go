package particle

import "math"

// Food tiers understood by the factory.
const (
	FoodRegular = "regular"
	FoodBonus   = "bonus"
	FoodGolden  = "golden"
)

// Power-up kinds shipped in DefaultCatalog. Active effects reuse the names.
const (
	PowerUpSpeed         = "speed"
	PowerUpSlow          = "slow"
	PowerUpGhost         = "ghost"
	PowerUpInvincibility = "invincibility"
	PowerUpMagnet        = "magnet"
	PowerUpMultiplier    = "multiplier"
)

// Range is an inclusive [Min, Max] interval. A scalar is a Range with
// equal bounds.
type Range struct {
	Min, Max float64
}

// Fixed returns the degenerate range {v, v}.
func Fixed(v float64) Range { return Range{Min: v, Max: v} }

func (r Range) scaled(k float64) Range { return Range{Min: r.Min * k, Max: r.Max * k} }

func (r Range) sample(rng Rand) float64 { return rangeF(rng, r.Min, r.Max) }

// TrailSpec enables a position trail behind ballistic particles.
// Length is clamped to MaxTrailLength.
type TrailSpec struct {
	Length int
	Decay  float64 // alpha multiplier per trail step
}

// OrbitSpec parameterizes orbiting particles. Radius values are in pixels
// at a 40px cell and are scaled at spawn like sizes.
type OrbitSpec struct {
	Radius       float64
	RadiusStep   float64 // added per ring index
	AngularSpeed float64 // radians per frame
}

// Direction selects the bias of active-effect emission.
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionHeading
)

// ParticleConfig holds generation parameters for one effect type. The
// engine reads it and never mutates or retains the Palette slice beyond
// a spawn call.
type ParticleConfig struct {
	Count    int
	Speed    Range // pixels per frame at a 40px cell
	Size     Range // pixels at a 40px cell
	Lifetime Range // milliseconds
	Duration float64
	Palette  Palette
	Trail    TrailSpec
	Gravity  float64 // pixels per frame², positive is down
	Friction float64 // velocity multiplier per frame, 0 means DefaultFriction
	Orbit    OrbitSpec
	Glow     bool
	Pulse    bool

	// Active-effect emission.
	Spread       float64 // cone width in radians
	EmitInterval float64 // milliseconds between bursts
	Direction    Direction
}

// DefaultParticleConfig is used for any kind missing from the catalog.
func DefaultParticleConfig() ParticleConfig {
	return ParticleConfig{
		Count:        8,
		Speed:        Range{Min: 1.5, Max: 3},
		Size:         Range{Min: 2, Max: 4},
		Lifetime:     Range{Min: 400, Max: 700},
		Duration:     600,
		Palette:      MustPalette("#ffffff", "#dddddd"),
		Friction:     DefaultFriction,
		Orbit:        OrbitSpec{Radius: 14, RadiusStep: 8, AngularSpeed: 0.08},
		Spread:       math.Pi / 3,
		EmitInterval: 120,
	}
}

// Catalog is the read-only configuration collaborator.
type Catalog interface {
	Food(kind string) (ParticleConfig, bool)
	PowerUp(kind string) (ParticleConfig, bool)
	ActiveEffect(kind string) (ParticleConfig, bool)
}

// StaticCatalog is a map-backed Catalog.
type StaticCatalog struct {
	Foods         map[string]ParticleConfig
	PowerUps      map[string]ParticleConfig
	ActiveEffects map[string]ParticleConfig
}

func (c *StaticCatalog) Food(kind string) (ParticleConfig, bool) {
	cfg, ok := c.Foods[kind]
	return cfg, ok
}

func (c *StaticCatalog) PowerUp(kind string) (ParticleConfig, bool) {
	cfg, ok := c.PowerUps[kind]
	return cfg, ok
}

func (c *StaticCatalog) ActiveEffect(kind string) (ParticleConfig, bool) {
	cfg, ok := c.ActiveEffects[kind]
	return cfg, ok
}

// DefaultCatalog returns the built-in effect tables.
func DefaultCatalog() *StaticCatalog {
	foodTrail := TrailSpec{Length: 5, Decay: 0.7}
	return &StaticCatalog{
		Foods: map[string]ParticleConfig{
			FoodRegular: {
				Count:    12,
				Speed:    Range{Min: 2, Max: 4},
				Size:     Range{Min: 3, Max: 6},
				Lifetime: Range{Min: 500, Max: 800},
				Palette:  MustPalette("#ff6b6b", "#ff8e53", "#ffd93d"),
				Trail:    foodTrail,
				Gravity:  0.05,
				Friction: DefaultFriction,
				Orbit:    OrbitSpec{Radius: 14, RadiusStep: 8, AngularSpeed: 0.08},
			},
			FoodBonus: {
				Count:    18,
				Speed:    Range{Min: 2.5, Max: 4.5},
				Size:     Range{Min: 3, Max: 7},
				Lifetime: Range{Min: 600, Max: 950},
				Palette:  MustPalette("#4ecdc4", "#45b7d1", "#96e6a1"),
				Trail:    foodTrail,
				Gravity:  0.04,
				Friction: DefaultFriction,
				Orbit:    OrbitSpec{Radius: 16, RadiusStep: 10, AngularSpeed: 0.09},
				Glow:     true,
			},
			FoodGolden: {
				Count:    24,
				Speed:    Range{Min: 3, Max: 5.5},
				Size:     Range{Min: 4, Max: 8},
				Lifetime: Range{Min: 700, Max: 1100},
				Palette:  MustPalette("#ffd700", "#ffec8b", "#fff8dc"),
				Trail:    TrailSpec{Length: 8, Decay: 0.75},
				Gravity:  0.03,
				Friction: DefaultFriction,
				Orbit:    OrbitSpec{Radius: 18, RadiusStep: 10, AngularSpeed: 0.1},
				Glow:     true,
				Pulse:    true,
			},
		},
		PowerUps: map[string]ParticleConfig{
			PowerUpSpeed:         powerUp(16, 700, "#00e5ff", "#18ffff", "#84ffff"),
			PowerUpSlow:          powerUp(14, 900, "#7c4dff", "#b388ff", "#651fff"),
			PowerUpGhost:         powerUp(12, 1000, "#eceff1", "#b0bec5", "#cfd8dc"),
			PowerUpInvincibility: powerUp(20, 800, "#ffab00", "#ffd740", "#ff6d00"),
			PowerUpMagnet:        powerUp(14, 750, "#ff1744", "#2979ff", "#f50057"),
			PowerUpMultiplier:    powerUp(18, 850, "#76ff03", "#b2ff59", "#64dd17"),
		},
		ActiveEffects: map[string]ParticleConfig{
			PowerUpSpeed:         activeEffect(3, 80, DirectionHeading, "#00e5ff", "#84ffff"),
			PowerUpSlow:          activeEffect(2, 160, DirectionUp, "#7c4dff", "#b388ff"),
			PowerUpGhost:         activeEffect(2, 140, DirectionUp, "#eceff1", "#b0bec5"),
			PowerUpInvincibility: activeEffect(4, 90, DirectionUp, "#ffab00", "#ffd740"),
			PowerUpMagnet:        activeEffect(2, 120, DirectionHeading, "#ff1744", "#2979ff"),
			PowerUpMultiplier:    activeEffect(3, 110, DirectionUp, "#76ff03", "#b2ff59"),
		},
	}
}

func powerUp(count int, duration float64, hexes ...string) ParticleConfig {
	return ParticleConfig{
		Count:    count,
		Speed:    Range{Min: 2, Max: 4},
		Size:     Range{Min: 3, Max: 6},
		Duration: duration,
		Palette:  MustPalette(hexes...),
		Trail:    TrailSpec{Length: 4, Decay: 0.65},
		Friction: DefaultFriction,
		Orbit:    OrbitSpec{Radius: 20, AngularSpeed: 0.07},
		Glow:     true,
	}
}

func activeEffect(count int, interval float64, dir Direction, hexes ...string) ParticleConfig {
	return ParticleConfig{
		Count:        count,
		Speed:        Range{Min: 0.8, Max: 1.8},
		Size:         Range{Min: 2, Max: 4},
		Lifetime:     Range{Min: 300, Max: 500},
		Palette:      MustPalette(hexes...),
		Gravity:      -0.02,
		Friction:     0.96,
		Spread:       math.Pi / 4,
		EmitInterval: interval,
		Direction:    dir,
	}
}
