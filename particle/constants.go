package particle

import "math"

// Pooling and batching
const (
	// DefaultPrewarm is the number of particles allocated per variant up front
	DefaultPrewarm = 50
	// MaxEffectParticles caps burst plus orbit particles of one food effect
	MaxEffectParticles = 40
	// MaxTrailLength bounds the inline trail ring buffer
	MaxTrailLength = 12
)

// Motion
const (
	// DefaultFriction is the per-frame velocity multiplier for ballistic particles
	DefaultFriction = 0.98
	// referenceCellSize is the cell size at which config values are authored
	referenceCellSize = 40.0
	minBaseScale      = 0.3
	maxBaseScale      = 1.0
	// pulseRate and pulseAmount modulate size of Pulse particles (radians per ms)
	pulseRate   = 0.02
	pulseAmount = 0.2
	// glowRadiusFactor sizes the halo of Glow particles relative to their size
	glowRadiusFactor = 2.0
)

// Food effect layout
const (
	// scoreCountDivisor adds one burst particle per this many points
	scoreCountDivisor = 50
	// orbitsPerRing is the number of bonus orbit particles per ring
	orbitsPerRing = 6
	// goldenHaloCount, goldenHaloRadius and goldenHaloSpeed shape the golden halo
	goldenHaloCount  = 6
	goldenHaloRadius = 1.8
	goldenHaloSpeed  = 0.5
	// powerUpHaloCount is the fixed orbit halo of every power-up effect
	powerUpHaloCount = 8
	// sparkle counts per food tier
	goldenSparkles = 4
	bonusSparkles  = 2
	// powerUpLifetimeMin is the low end of power-up lifetimes as a fraction of Duration
	powerUpLifetimeMin = 0.75
)

// Score callout
const (
	scoreLifetime     = 1400.0
	scoreFontSize     = 18.0
	scoreLaunchEnd    = 0.3
	scoreFadeStart    = 0.85
	scoreZVelocity    = 14.0
	scoreZDamping     = 0.9
	scoreZRelax       = 0.85
	scorePerspective  = 300.0
	scorePeakScale    = 1.3
	scoreLaunchAccel  = 0.02
	scoreRebound      = 0.5
	scoreSpring       = 0.18
	scoreSpringDamp   = 0.7
	scoreBobRate      = 0.006
	scoreBobAmplitude = 0.05
	scoreRise         = 28.0
	scoreWobble       = 0.06
	scoreWobbleRate   = 0.004

	// shockwave ring, drawn while life < shockwaveEnd
	shockwaveEnd    = 0.2
	shockwaveRadius = 3.0 // multiples of the font size
	shockwaveWidth  = 2.0
)

// Score tier thresholds
const (
	TierRainbowScore = 1000
	TierGoldScore    = 500
	TierSilverScore  = 100
)

// Sparkle
const (
	starPoints      = 8
	starVertices    = starPoints * 2
	starInnerRatio  = 0.4
	sparkleSpinMax  = 0.15 // radians per frame
	sparklePulse    = 0.012
	sparklePulseMin = 0.7
	sparkleLifetime = 900.0
)

// Colour cycling
const (
	rainbowDegreesPerMs = 0.36
	rainbowSaturation   = 0.85
)

// Active emission
const (
	defaultEmitInterval = 100.0
	defaultSpread       = math.Pi / 3
)

// BaseScale maps a cell size onto the factor applied to sizes, speeds and
// orbit radii at spawn.
func BaseScale(cellSize float64) float64 {
	return clampF(cellSize/referenceCellSize, minBaseScale, maxBaseScale)
}
