package particle

// Variant is the closed set of particle kinds. Each kind is a row in
// variantTable; there is no per-kind type switch anywhere else.
type Variant uint8

const (
	Burst Variant = iota
	Orbit
	Score
	ActiveEmission
	Sparkle

	variantCount
)

var variantNames = [variantCount]string{
	Burst:          "burst",
	Orbit:          "orbit",
	Score:          "score",
	ActiveEmission: "active_emission",
	Sparkle:        "sparkle",
}

func (v Variant) String() string {
	if !v.Valid() {
		return "unknown"
	}
	return variantNames[v]
}

// Valid reports whether v is one of the declared variants.
func (v Variant) Valid() bool {
	return v < variantCount
}

// Variants lists every variant in declaration order.
func Variants() []Variant {
	vs := make([]Variant, variantCount)
	for i := range vs {
		vs[i] = Variant(i)
	}
	return vs
}

// fieldSet marks the config fields a variant reads when it is spawned.
type fieldSet uint8

const (
	usesSize fieldSet = 1 << iota
	usesSpeed
	usesPalette

	usesAll = usesSize | usesSpeed | usesPalette
)

// variantOps are the pure per-kind behaviours. update receives the age in
// milliseconds, already known to be below the lifetime.
type variantOps struct {
	uses   fieldSet
	init   func(p *Particle, cfg *ParticleConfig, s *Spawn, rng Rand)
	update func(p *Particle, age float64)
	render func(p *Particle, c Canvas)
}

var variantTable = [variantCount]variantOps{
	Burst:          {uses: usesAll, init: initBallistic, update: updateBallistic, render: renderBallistic},
	Orbit:          {uses: usesSize | usesPalette, init: initOrbit, update: updateOrbit, render: renderDot},
	Score:          {uses: usesPalette, init: initScore, update: updateScore, render: renderScore},
	ActiveEmission: {uses: usesAll, init: initEmission, update: updateBallistic, render: renderBallistic},
	Sparkle:        {uses: usesSize | usesPalette, init: initSparkle, update: updateSparkle, render: renderSparkle},
}
