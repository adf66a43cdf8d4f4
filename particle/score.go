package particle

import (
	"image/color"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	goldColor   = colorful.Color{R: 1, G: 0.843, B: 0}
	silverColor = colorful.Color{R: 0.753, G: 0.753, B: 0.753}
)

// scoreTier is picked from the final score of a food effect. It sets the
// callout colour and scales the accompanying burst.
type scoreTier struct {
	countMul   float64
	sizeMul    float64
	glow       float64 // halo radius at scale 1, 0 for none
	color      colorful.Color
	fixedColor bool
	rainbow    bool
	shockwave  bool
}

func tierFor(score int) scoreTier {
	switch {
	case score >= TierRainbowScore:
		return scoreTier{countMul: 2, sizeMul: 1.6, glow: 24, rainbow: true, shockwave: true}
	case score >= TierGoldScore:
		return scoreTier{countMul: 1.6, sizeMul: 1.35, glow: 18, color: goldColor, fixedColor: true, shockwave: true}
	case score >= TierSilverScore:
		return scoreTier{countMul: 1.3, sizeMul: 1.15, glow: 10, color: silverColor, fixedColor: true, shockwave: true}
	default:
		return scoreTier{countMul: 1, sizeMul: 1}
	}
}

type scoreState struct {
	text     string
	value    int
	fontSize float64
	origin   Vec2
	tier     scoreTier

	z, zVel         float64
	scale, scaleVel float64
	peaked          bool
	rotation        float64
	hueOffset       float64

	ringRadius float64
	ringAlpha  float64
}

// projection is the pseudo-3D size factor for the current depth.
func (s *scoreState) projection() float64 {
	return scorePerspective / (scorePerspective - s.z)
}

func initScore(p *Particle, _ *ParticleConfig, sp *Spawn, rng Rand) {
	tier := tierFor(sp.Score.Value)
	s := &p.score
	s.value = sp.Score.Value
	s.text = strconv.Itoa(sp.Score.Value)
	s.tier = tier
	s.fontSize = sp.Score.FontSize
	if s.fontSize <= 0 {
		s.fontSize = scoreFontSize * p.Scale * tier.sizeMul
	}
	s.origin = sp.Pos
	s.zVel = scoreZVelocity
	s.scale = 0.6
	s.hueOffset = rng.Float64() * 360

	if tier.fixedColor {
		p.Color = tier.color
	}
	if tier.rainbow {
		p.Color = rainbow(0, s.hueOffset)
	}
	p.Glow = p.Glow || tier.glow > 0
	p.Vel = Vec2{}
	p.trail.configure(TrailSpec{})
}

// updateScore runs the launch, settle and fade phases off the life ratio.
func updateScore(p *Particle, age float64) {
	s := &p.score
	life := age / p.Lifetime

	switch {
	case life < scoreLaunchEnd:
		s.z += s.zVel
		s.zVel *= scoreZDamping
		if !s.peaked {
			s.scaleVel += scoreLaunchAccel
			s.scale += s.scaleVel
			if s.scale >= scorePeakScale {
				s.scale = scorePeakScale
				s.scaleVel = -s.scaleVel * scoreRebound
				s.peaked = true
			}
		} else {
			s.scaleVel += (1 - s.scale) * scoreSpring
			s.scaleVel *= scoreSpringDamp
			s.scale += s.scaleVel
		}
		p.alpha = 255
	case life < scoreFadeStart:
		s.scale = 1 + math.Sin(age*scoreBobRate)*scoreBobAmplitude
		s.z *= scoreZRelax
		p.alpha = 255
	default:
		s.z *= scoreZRelax
		p.alpha = clampF(255*(1-(life-scoreFadeStart)/(1-scoreFadeStart)), 0, 255)
	}
	s.z = math.Min(s.z, scorePerspective*0.8)

	rise := scoreRise * p.Scale * EaseOutBack(math.Min(life/scoreLaunchEnd, 1))
	p.Pos = s.origin.Add(Vec2{Y: -rise}.Scale(s.projection()))
	s.rotation = math.Sin(age*scoreWobbleRate) * scoreWobble

	if s.tier.rainbow {
		p.Color = rainbow(age, s.hueOffset)
	}

	s.ringAlpha = 0
	if s.tier.shockwave && life < shockwaveEnd {
		t := EaseOutQuad(life / shockwaveEnd)
		s.ringRadius = s.fontSize * shockwaveRadius * t
		s.ringAlpha = 255 * (1 - t)
	}
}

func renderScore(p *Particle, c Canvas) {
	s := &p.score
	depth := s.projection()
	col := rgba(p.Color, p.alpha)

	if s.ringAlpha > 0 {
		c.StrokeCircle(s.origin, s.ringRadius, shockwaveWidth*p.Scale, rgba(p.Color, s.ringAlpha))
	}
	if s.tier.glow > 0 {
		c.SetGlow(s.tier.glow*p.Scale*depth, col)
	}
	c.DrawText(s.text, p.Pos, s.fontSize*s.scale*depth, s.rotation, col)
	if s.tier.glow > 0 {
		c.SetGlow(0, color.NRGBA{})
	}
}
