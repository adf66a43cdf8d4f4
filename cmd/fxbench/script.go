package main

import "snakefx/particle"

var (
	scriptFoods      = []string{particle.FoodRegular, particle.FoodBonus, particle.FoodGolden}
	scriptFoodScores = []int{10, 50, 200}

	scriptPowerUps = []string{
		particle.PowerUpSpeed,
		particle.PowerUpSlow,
		particle.PowerUpGhost,
		particle.PowerUpInvincibility,
		particle.PowerUpMagnet,
		particle.PowerUpMultiplier,
	}
)

const (
	// scriptPowerUpShare is the fraction of scripted pickups that are power-ups
	scriptPowerUpShare = 0.35

	scriptMaxMultiplier = 5

	// scriptEffectMs is how long a scripted power-up keeps emitting
	scriptEffectMs = 2000.0
)

// script plays random pickups on a board so the engine sees the same mix of
// effects a game would produce.
type script struct {
	rng        particle.Rand
	cols, rows int

	active string
	pos    particle.GridPos
	until  float64
}

func newScript(seed uint64, cols, rows int) *script {
	return &script{rng: particle.NewRand(seed), cols: max(cols, 1), rows: max(rows, 1)}
}

func (s *script) pick(n int) int {
	return min(int(s.rng.Float64()*float64(n)), n-1)
}

func (s *script) randomPos() particle.GridPos {
	return particle.GridPos{X: s.pick(s.cols), Y: s.pick(s.rows)}
}

// fire collects one random pickup. Power-ups also start a timed active effect.
func (s *script) fire(sys *particle.System, now float64) {
	pos := s.randomPos()
	if s.rng.Float64() >= scriptPowerUpShare {
		i := s.pick(len(scriptFoods))
		sys.CreateFoodEffect(pos, scriptFoods[i], scriptFoodScores[i], 1+s.pick(scriptMaxMultiplier))
		return
	}

	kind := scriptPowerUps[s.pick(len(scriptPowerUps))]
	sys.CreatePowerUpEffect(pos, kind)
	if s.active != "" && s.active != kind {
		sys.StopActiveEffect(s.active)
	}
	s.active, s.pos, s.until = kind, pos, now+scriptEffectMs
}

// sustain keeps the current active effect emitting until it times out.
func (s *script) sustain(sys *particle.System, now float64) {
	if s.active == "" {
		return
	}
	if now >= s.until {
		sys.StopActiveEffect(s.active)
		s.active = ""
		return
	}
	sys.UpdateActiveEffect(s.active, s.pos)
}
