package particle

import (
	"bytes"
	"log"
	"math"
	"strings"
	"testing"
)

func newTestFactory() (*Factory, *Pool) {
	pool := NewPool(DefaultPrewarm)
	return NewFactory(pool, DefaultCatalog(), NewRand(42), nil), pool
}

func TestFoodEffectScoreText(t *testing.T) {
	f, _ := newTestFactory()
	ps := f.CreateFoodEffect(nil, Vec2{X: 110, Y: 110}, 20, FoodRegular, 10, 2, 0)

	var scores []*Particle
	for _, p := range ps {
		if p.Variant() == Score {
			scores = append(scores, p)
		}
	}
	if len(scores) != 1 {
		t.Fatalf("Expected exactly one score particle, got %d", len(scores))
	}
	if scores[0].Text() != "20" {
		t.Errorf("Expected score text \"20\", got %q", scores[0].Text())
	}
}

func TestFoodEffectTiering(t *testing.T) {
	cases := []struct{ score, mult int }{
		{1, 1}, {10, 2}, {50, 3}, {100, 5}, {1000, 1}, {5000, 10},
	}
	for _, c := range cases {
		f, _ := newTestFactory()
		regular := f.CreateFoodEffect(nil, Vec2{}, 40, FoodRegular, c.score, c.mult, 0)
		golden := f.CreateFoodEffect(nil, Vec2{}, 40, FoodGolden, c.score, c.mult, 0)

		if len(golden) < len(regular) {
			t.Errorf("score %d x%d: golden produced %d particles, regular %d", c.score, c.mult, len(golden), len(regular))
		}
		if countVariants(regular)[Orbit] != 0 {
			t.Errorf("score %d x%d: regular effect contains orbit particles", c.score, c.mult)
		}
		if countVariants(golden)[Orbit] == 0 {
			t.Errorf("score %d x%d: golden effect has no orbit particles", c.score, c.mult)
		}
	}
}

func TestFoodEffectBonusRings(t *testing.T) {
	f, _ := newTestFactory()
	center := Vec2{X: 60, Y: 60}
	ps := f.CreateFoodEffect(nil, center, 40, FoodBonus, 100, 5, 0)

	counts := countVariants(ps)
	total := counts[Burst] + counts[Orbit]
	if counts[Orbit] != total/3 {
		t.Errorf("Expected a third of %d particles to orbit, got %d", total, counts[Orbit])
	}

	radii := map[float64]bool{}
	for _, p := range ps {
		if p.Variant() == Orbit {
			if p.OrbitCenter() != center {
				t.Errorf("Orbit centred on %v, want %v", p.OrbitCenter(), center)
			}
			radii[p.OrbitRadius()] = true
		}
	}
	if counts[Orbit] > orbitsPerRing && len(radii) < 2 {
		t.Errorf("Expected growing ring radii, got %v", radii)
	}
}

func TestFoodEffectCap(t *testing.T) {
	for _, food := range []string{FoodRegular, FoodBonus, FoodGolden, "mystery"} {
		for _, score := range []int{0, 10, 99, 500, 1000, 1e6} {
			f, _ := newTestFactory()
			ps := f.CreateFoodEffect(nil, Vec2{}, 40, food, score, 3, 0)
			c := countVariants(ps)
			if n := c[Burst] + c[Orbit]; n > MaxEffectParticles {
				t.Errorf("%s score %d: %d burst/orbit particles exceeds cap", food, score, n)
			}
		}
	}
}

func TestFoodEffectScalesWithCellSize(t *testing.T) {
	f, _ := newTestFactory()
	small := f.CreateFoodEffect(nil, Vec2{}, 8, FoodRegular, 1, 1, 0)
	big := f.CreateFoodEffect(nil, Vec2{}, 80, FoodRegular, 1, 1, 0)

	for _, p := range small {
		if p.Scale != minBaseScale {
			t.Fatalf("Expected scale clamped to %v, got %v", minBaseScale, p.Scale)
		}
	}
	for _, p := range big {
		if p.Scale != maxBaseScale {
			t.Fatalf("Expected scale clamped to %v, got %v", maxBaseScale, p.Scale)
		}
	}
}

func TestPowerUpEffect(t *testing.T) {
	f, _ := newTestFactory()
	center := Vec2{X: 110, Y: 110}
	cfg, _ := DefaultCatalog().PowerUp(PowerUpSpeed)

	ps := f.CreatePowerUpEffect(nil, center, 20, PowerUpSpeed, 0)
	counts := countVariants(ps)
	if counts[Burst] != cfg.Count {
		t.Errorf("Expected %d burst particles, got %d", cfg.Count, counts[Burst])
	}
	if counts[Orbit] != powerUpHaloCount {
		t.Errorf("Expected %d orbit particles, got %d", powerUpHaloCount, counts[Orbit])
	}
	if len(ps) != cfg.Count+powerUpHaloCount {
		t.Errorf("Unexpected extra particles: %v", counts)
	}
	for _, p := range ps {
		if p.Pos != center {
			t.Errorf("Expected spawn at %v, got %v", center, p.Pos)
		}
		if !cfg.Palette.Contains(p.Color) {
			t.Errorf("Colour %v not from the speed palette", p.Color.Hex())
		}
		if p.Lifetime < cfg.Duration*powerUpLifetimeMin || p.Lifetime > cfg.Duration {
			t.Errorf("Lifetime %v not derived from duration %v", p.Lifetime, cfg.Duration)
		}
	}
}

func TestUnknownKindsFallBack(t *testing.T) {
	var buf bytes.Buffer
	pool := NewPool(0)
	f := NewFactory(pool, DefaultCatalog(), NewRand(1), log.New(&buf, "", 0))

	food := f.CreateFoodEffect(nil, Vec2{}, 40, "unobtainium", 1, 1, 0)
	if want := 1 + DefaultParticleConfig().Count; len(food) != want {
		t.Errorf("Expected %d particles from default config, got %d", want, len(food))
	}
	power := f.CreatePowerUpEffect(nil, Vec2{}, 40, "teleport", 0)
	if want := DefaultParticleConfig().Count + powerUpHaloCount; len(power) != want {
		t.Errorf("Expected %d particles from default config, got %d", want, len(power))
	}
	if !strings.Contains(buf.String(), "unobtainium") || !strings.Contains(buf.String(), "teleport") {
		t.Errorf("Expected fallbacks to be logged, got %q", buf.String())
	}
}

func TestInvalidConfigSkipsParticles(t *testing.T) {
	flatSize := testConfig()
	flatSize.Size = Fixed(4)
	still := testConfig()
	still.Speed = Range{Min: 0, Max: 0}
	cat := &StaticCatalog{
		Foods:    map[string]ParticleConfig{FoodRegular: flatSize, FoodBonus: still},
		PowerUps: map[string]ParticleConfig{PowerUpSpeed: {Count: 5, Speed: Fixed(2), Size: Range{Min: 1, Max: 2}}},
	}
	pool := NewPool(3)
	f := NewFactory(pool, cat, NewRand(1), nil)

	ps := f.CreateFoodEffect(nil, Vec2{}, 40, FoodRegular, 10, 2, 0)
	if len(ps) != 1 || ps[0].Variant() != Score {
		t.Fatalf("Expected only the score callout to survive a flat size range, got %v", countVariants(ps))
	}
	if ps[0].Text() != "20" {
		t.Errorf("Expected callout 20, got %q", ps[0].Text())
	}
	skipped := f.Skipped()
	if skipped == 0 {
		t.Error("Expected the sized candidates to be skipped")
	}

	// Orbits, sparkles and the callout never read the speed range.
	bonus := f.CreateFoodEffect(nil, Vec2{}, 40, FoodBonus, 50, 1, 0)
	counts := countVariants(bonus)
	if counts[Burst] != 0 {
		t.Errorf("Expected motionless bursts to be skipped, got %d", counts[Burst])
	}
	if counts[Score] != 1 {
		t.Errorf("Expected 1 score callout, got %d", counts[Score])
	}
	if counts[Orbit] == 0 {
		t.Error("Expected orbit rings to spawn without a speed range")
	}
	if counts[Sparkle] != bonusSparkles {
		t.Errorf("Expected %d sparkles, got %d", bonusSparkles, counts[Sparkle])
	}
	if f.Skipped() == skipped {
		t.Error("Expected the bursts to be counted as skipped")
	}

	power := f.CreatePowerUpEffect(nil, Vec2{}, 40, PowerUpSpeed, 0)
	if len(power) != 0 {
		t.Errorf("Expected empty-palette power-up to be skipped, got %d", len(power))
	}
	if f.Spawned() != len(ps)+len(bonus) {
		t.Errorf("Expected %d spawned, got %d", len(ps)+len(bonus), f.Spawned())
	}

	for _, p := range append(ps, bonus...) {
		pool.Release(p)
	}
	if pool.TotalFree() != pool.TotalAllocated() {
		t.Error("Expected no particle acquired for skipped candidates")
	}
}

func TestSkipChecksDrawnSpeed(t *testing.T) {
	cfg := testConfig()
	cfg.Count = 40
	cfg.Speed = Range{Min: -2, Max: 2}
	cat := &StaticCatalog{Foods: map[string]ParticleConfig{FoodRegular: cfg}}
	f := NewFactory(NewPool(0), cat, NewRand(5), nil)

	ps := f.CreateFoodEffect(nil, Vec2{}, 40, FoodRegular, 10, 1, 0)
	bursts := countVariants(ps)[Burst]
	if bursts == 0 || f.Skipped() == 0 {
		t.Fatalf("Expected a partial batch, got %d bursts and %d skipped", bursts, f.Skipped())
	}
	for _, p := range ps {
		if p.Variant() == Burst && !(p.Vel.Len() > 0) {
			t.Errorf("Expected spawned bursts to move, got velocity %v", p.Vel)
		}
	}
}

func TestSkipIsSilent(t *testing.T) {
	var buf bytes.Buffer
	broken := testConfig()
	broken.Palette = nil
	cat := &StaticCatalog{Foods: map[string]ParticleConfig{FoodRegular: broken}}
	f := NewFactory(NewPool(0), cat, NewRand(1), log.New(&buf, "", 0))

	f.CreateFoodEffect(nil, Vec2{}, 40, FoodRegular, 10, 1, 0)
	if f.Skipped() == 0 {
		t.Fatal("Expected candidates to be skipped")
	}
	if buf.Len() != 0 {
		t.Errorf("Expected skips to log nothing, got %q", buf.String())
	}
}

func TestEmitActiveCone(t *testing.T) {
	f, _ := newTestFactory()
	cfg := testConfig()
	cfg.Count = 50
	cfg.Spread = math.Pi / 4

	ps := f.EmitActive(nil, Vec2{}, 40, &cfg, Vec2{X: 1}, 0)
	if len(ps) != 50 {
		t.Fatalf("Expected 50 particles, got %d", len(ps))
	}
	for _, p := range ps {
		if p.Variant() != ActiveEmission {
			t.Errorf("Expected active emission variant, got %s", p.Variant())
		}
		angle := math.Atan2(p.Vel.Y, p.Vel.X)
		if math.Abs(angle) > cfg.Spread/2+1e-9 {
			t.Errorf("Angle %v outside cone of %v", angle, cfg.Spread)
		}
	}
}

func TestFactoryDeterministic(t *testing.T) {
	run := func() []Vec2 {
		f := NewFactory(NewPool(0), DefaultCatalog(), NewRand(99), nil)
		var vels []Vec2
		for _, p := range f.CreateFoodEffect(nil, Vec2{}, 40, FoodGolden, 20, 2, 0) {
			vels = append(vels, p.Vel)
		}
		return vels
	}
	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("Different batch sizes %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Particle %d differs between seeded runs: %v vs %v", i, a[i], b[i])
		}
	}
}
