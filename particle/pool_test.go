package particle

import "testing"

func TestPoolPrewarm(t *testing.T) {
	pool := NewPool(DefaultPrewarm)
	for _, v := range Variants() {
		if pool.Free(v) != DefaultPrewarm {
			t.Errorf("Expected %d free %s particles, got %d", DefaultPrewarm, v, pool.Free(v))
		}
		if pool.Allocated(v) != DefaultPrewarm {
			t.Errorf("Expected %d allocated %s particles, got %d", DefaultPrewarm, v, pool.Allocated(v))
		}
	}
}

func TestPoolReusesBeforeAllocating(t *testing.T) {
	pool := NewPool(2)

	a := pool.Acquire(Orbit)
	b := pool.Acquire(Orbit)
	if pool.Allocated(Orbit) != 2 {
		t.Fatalf("Expected no allocation while free particles exist, allocated=%d", pool.Allocated(Orbit))
	}
	c := pool.Acquire(Orbit)
	if pool.Allocated(Orbit) != 3 {
		t.Fatalf("Expected allocation on underflow, allocated=%d", pool.Allocated(Orbit))
	}

	pool.Release(b)
	d := pool.Acquire(Orbit)
	if d != b {
		t.Error("Expected the freed particle to be handed out again")
	}
	if pool.Allocated(Orbit) != 3 {
		t.Errorf("Expected allocation count to stay 3, got %d", pool.Allocated(Orbit))
	}
	for _, p := range []*Particle{a, c, d} {
		if p.Variant() != Orbit {
			t.Errorf("Expected orbit particle, got %s", p.Variant())
		}
	}
}

func TestPoolConservation(t *testing.T) {
	pool := NewPool(4)
	var active []*Particle
	total := pool.TotalAllocated()

	// Interleave acquires and releases across variants.
	for round := 0; round < 20; round++ {
		v := Variant(round % int(variantCount))
		active = append(active, pool.Acquire(v), pool.Acquire(v))
		if round%3 == 0 {
			pool.Release(active[0])
			active = active[1:]
		}
		if pool.TotalFree()+len(active) != pool.TotalAllocated() {
			t.Fatalf("Round %d: free %d + active %d != allocated %d",
				round, pool.TotalFree(), len(active), pool.TotalAllocated())
		}
	}

	for _, p := range active {
		pool.Release(p)
	}
	if pool.TotalFree() != pool.TotalAllocated() {
		t.Errorf("Expected every particle back in the pool, free=%d allocated=%d", pool.TotalFree(), pool.TotalAllocated())
	}
	if pool.TotalAllocated() < total {
		t.Errorf("Allocation count went backwards")
	}
}

func TestPoolDoubleReleaseIgnored(t *testing.T) {
	pool := NewPool(0)
	p := pool.Acquire(Burst)
	pool.Release(p)
	pool.Release(p)
	pool.Release(nil)
	if pool.Free(Burst) != 1 {
		t.Errorf("Expected one free burst particle, got %d", pool.Free(Burst))
	}
}

func TestPoolUnknownVariant(t *testing.T) {
	pool := NewPool(0)
	p := pool.Acquire(Variant(99))
	if p.Variant() != Burst {
		t.Errorf("Expected unknown variant to be served as burst, got %s", p.Variant())
	}
	if pool.Free(Variant(99)) != 0 || pool.Allocated(Variant(99)) != 0 {
		t.Error("Expected zero counts for unknown variant")
	}
}
