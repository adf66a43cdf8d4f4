package particle

import (
	"math"
	"testing"
)

func TestParticleLifecycle(t *testing.T) {
	cfg := testConfig()
	for _, v := range Variants() {
		t.Run(v.String(), func(t *testing.T) {
			pool := NewPool(0)
			p := pool.Acquire(v)
			p.Initialize(&cfg, Spawn{
				Pos:      Vec2{X: 10, Y: 10},
				Now:      1000,
				Lifetime: 500,
				Score:    ScoreParams{Value: 10},
				Orbit:    OrbitParams{Center: Vec2{X: 10, Y: 10}, Radius: 5, AngularSpeed: 0.1},
			}, NewRand(7))

			if age := p.Age(1000); age != 0 {
				t.Errorf("Expected age 0 after Initialize, got %v", age)
			}
			if !p.Alive(1000) {
				t.Error("Expected particle to be alive after Initialize")
			}
			if !p.Update(1499) {
				t.Error("Expected Update to succeed one ms before expiry")
			}
			if p.Update(1500) {
				t.Error("Expected Update to report expiry at age == lifetime")
			}
		})
	}
}

func TestInitializeResolvesRanges(t *testing.T) {
	cfg := testConfig()
	p := NewPool(0).Acquire(Burst)
	p.Initialize(&cfg, Spawn{Now: 0, Scale: 0.5}, NewRand(3))

	if p.Lifetime < cfg.Lifetime.Min || p.Lifetime > cfg.Lifetime.Max {
		t.Errorf("Lifetime %v outside %v", p.Lifetime, cfg.Lifetime)
	}
	if p.Size < cfg.Size.Min*0.5 || p.Size > cfg.Size.Max*0.5 {
		t.Errorf("Size %v not scaled into %v", p.Size, cfg.Size.scaled(0.5))
	}
	speed := p.Vel.Len()
	if speed < cfg.Speed.Min*0.5-1e-9 || speed > cfg.Speed.Max*0.5+1e-9 {
		t.Errorf("Speed %v not scaled into %v", speed, cfg.Speed.scaled(0.5))
	}
	if !cfg.Palette.Contains(p.Color) {
		t.Errorf("Colour %v not from palette", p.Color)
	}
}

func TestResetPurity(t *testing.T) {
	cfg := testConfig()
	pool := NewPool(0)
	rng := NewRand(11)

	score := pool.Acquire(Score)
	score.Initialize(&cfg, Spawn{Now: 0, Lifetime: 1000, Score: ScoreParams{Value: 250}}, rng)
	score.Update(100)
	if score.Text() != "250" {
		t.Fatalf("Expected text 250, got %q", score.Text())
	}
	pool.Release(score)

	again := pool.Acquire(Score)
	if again != score {
		t.Fatal("Expected the released particle to be reused")
	}
	if again.Text() != "" || again.score.tier.shockwave || again.score.z != 0 || again.Glow {
		t.Errorf("Score state leaked through Reset: %+v", again.score)
	}
	again.Initialize(&cfg, Spawn{Now: 500, Lifetime: 1000, Score: ScoreParams{Value: 5}}, rng)
	if again.Text() != "5" || again.Born != 500 {
		t.Errorf("Expected fresh state, got text %q born %v", again.Text(), again.Born)
	}

	burst := pool.Acquire(Burst)
	burst.Initialize(&cfg, Spawn{Now: 0, Lifetime: 1000}, rng)
	for now := 0.0; now < 100; now += 16 {
		burst.Update(now)
	}
	if burst.TrailLen() == 0 {
		t.Fatal("Expected burst to record a trail")
	}
	pool.Release(burst)
	burst = pool.Acquire(Burst)
	if burst.TrailLen() != 0 || burst.Pos != (Vec2{}) || burst.Vel != (Vec2{}) {
		t.Errorf("Burst state leaked through Reset: trail=%d pos=%v vel=%v", burst.TrailLen(), burst.Pos, burst.Vel)
	}
	noTrail := cfg
	noTrail.Trail = TrailSpec{}
	burst.Initialize(&noTrail, Spawn{Now: 0, Lifetime: 1000}, rng)
	burst.Update(16)
	if burst.TrailLen() != 0 {
		t.Errorf("Expected no trail after re-initialize without one, got %d", burst.TrailLen())
	}

	orbit := pool.Acquire(Orbit)
	orbit.Initialize(&cfg, Spawn{Lifetime: 1000, Orbit: OrbitParams{Center: Vec2{X: 40, Y: 40}, Radius: 12}}, rng)
	pool.Release(orbit)
	orbit = pool.Acquire(Orbit)
	if orbit.OrbitCenter() != (Vec2{}) || orbit.OrbitRadius() != 0 {
		t.Errorf("Orbit state leaked: center=%v radius=%v", orbit.OrbitCenter(), orbit.OrbitRadius())
	}
	if orbit.Variant() != Orbit {
		t.Errorf("Expected Reset to keep the variant, got %s", orbit.Variant())
	}
}

func TestOrbitStaysOnRadius(t *testing.T) {
	cfg := testConfig()
	p := NewPool(0).Acquire(Orbit)
	center := Vec2{X: 110, Y: 110}
	p.Initialize(&cfg, Spawn{
		Pos:      center,
		Now:      0,
		Lifetime: 3000,
		Orbit:    OrbitParams{Center: center, Radius: 17.5, AngularSpeed: 0.13, Angle: 1},
	}, NewRand(5))

	for now := 0.0; p.Update(now); now += 16 {
		if d := p.Pos.Dist(center); math.Abs(d-17.5) > 1e-9 {
			t.Fatalf("At %vms distance %v drifted from radius 17.5", now, d)
		}
	}
}

func TestMonotonicFade(t *testing.T) {
	cfg := testConfig()
	for _, v := range []Variant{Burst, Sparkle} {
		t.Run(v.String(), func(t *testing.T) {
			p := NewPool(0).Acquire(v)
			p.Initialize(&cfg, Spawn{Now: 0, Lifetime: 1000}, NewRand(9))
			prev := math.Inf(1)
			for now := 850.0; now < 1000; now++ {
				if !p.Update(now) {
					t.Fatalf("Expired early at %v", now)
				}
				if p.Alpha() > prev {
					t.Fatalf("Alpha rose from %v to %v at %vms", prev, p.Alpha(), now)
				}
				prev = p.Alpha()
			}
		})
	}
}

func TestBurstBallistics(t *testing.T) {
	cfg := testConfig()
	cfg.Gravity = 0.5
	p := NewPool(0).Acquire(Burst)
	p.Initialize(&cfg, Spawn{Now: 0, Lifetime: 1000, Angle: 0, Scale: 1}, NewRand(1))
	p.Vel = Vec2{X: 2}

	p.Update(16)
	wantVel := Vec2{X: 2 * DefaultFriction, Y: 0.5 * DefaultFriction}
	if math.Abs(p.Vel.X-wantVel.X) > 1e-12 || math.Abs(p.Vel.Y-wantVel.Y) > 1e-12 {
		t.Errorf("Expected velocity %v, got %v", wantVel, p.Vel)
	}
	if p.Pos != wantVel {
		t.Errorf("Expected position %v, got %v", wantVel, p.Pos)
	}
}

func TestTrailRingBuffer(t *testing.T) {
	var tr trail
	tr.configure(TrailSpec{Length: 3, Decay: 0.5})
	for i := 1; i <= 5; i++ {
		tr.push(Vec2{X: float64(i)})
	}
	if tr.n != 3 {
		t.Fatalf("Expected 3 points, got %d", tr.n)
	}
	for i, want := range []float64{5, 4, 3} {
		if got := tr.at(i).X; got != want {
			t.Errorf("at(%d) = %v, want %v", i, got, want)
		}
	}

	tr.configure(TrailSpec{Length: 100})
	if tr.length != MaxTrailLength {
		t.Errorf("Expected length clamped to %d, got %d", MaxTrailLength, tr.length)
	}
}

func TestRenderTrailDecay(t *testing.T) {
	cfg := testConfig()
	p := NewPool(0).Acquire(Burst)
	p.Initialize(&cfg, Spawn{Now: 0, Lifetime: 10000}, NewRand(2))
	for now := 0.0; now <= 160; now += 16 {
		p.Update(now)
	}
	c := &recordingCanvas{}
	p.Render(c)

	if c.circles != p.TrailLen()+1 {
		t.Fatalf("Expected %d circles, got %d", p.TrailLen()+1, c.circles)
	}
	// Oldest trail point first, head last: alpha must rise.
	for i := 1; i < len(c.colors); i++ {
		if c.colors[i].A < c.colors[i-1].A {
			t.Errorf("Trail alpha not increasing towards head at %d: %v", i, c.colors)
		}
	}
}

func TestSparkleStarPolygon(t *testing.T) {
	for i, v := range starUnit {
		want := 1.0
		if i%2 == 1 {
			want = starInnerRatio
		}
		if math.Abs(v.Len()-want) > 1e-12 {
			t.Errorf("Vertex %d radius %v, want %v", i, v.Len(), want)
		}
	}

	cfg := testConfig()
	p := NewPool(0).Acquire(Sparkle)
	p.Initialize(&cfg, Spawn{Now: 0, Lifetime: 900}, NewRand(4))
	p.Update(10)
	c := &recordingCanvas{}
	p.Render(c)
	if c.polygons != 1 {
		t.Errorf("Expected one star polygon, got %d", c.polygons)
	}
	if !p.Sparkle {
		t.Error("Expected sparkle flag on a Sparkle particle")
	}
}
