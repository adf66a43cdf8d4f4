package particle

import (
	"io"
	"log"
)

// Grid converts board coordinates into pixel space.
type Grid interface {
	CellCenter(pos GridPos) Vec2
	CellSize() float64
}

// Clock is the host's monotonic millisecond clock. It must stop while the
// host loop is paused.
type Clock interface {
	Now() float64
}

// SystemConfig configures NewSystem.
type SystemConfig struct {
	// Prewarm is the number of particles allocated per variant up front.
	Prewarm int
	// Catalog supplies per-effect configs; nil uses DefaultCatalog.
	Catalog Catalog
	// Rand drives every randomized spawn value; nil seeds from Seed.
	Rand Rand
	Seed uint64
	// Logger receives diagnostics; nil discards them.
	Logger *log.Logger
}

// DefaultSystemConfig returns the stock pool size and catalog.
func DefaultSystemConfig() SystemConfig {
	return SystemConfig{
		Prewarm: DefaultPrewarm,
		Catalog: DefaultCatalog(),
		Seed:    1,
	}
}

// Stats is a snapshot of the system counters.
type Stats struct {
	Active    int
	Free      int
	Allocated int
	Spawned   int
	Skipped   int
	Recycled  int
}

// System owns the active particles. Update and Draw are called once per
// frame from the render loop; the Create and UpdateActiveEffect calls come
// from collaborators reacting to game events on the same goroutine.
type System struct {
	grid    Grid
	clock   Clock
	pool    *Pool
	factory *Factory
	logger  *log.Logger

	active   []*Particle
	emitters map[string]*emitter
	heading  Vec2
	recycled int
}

// NewSystem builds a system with its own pool and factory.
func NewSystem(grid Grid, clock Clock, cfg SystemConfig) *System {
	if cfg.Catalog == nil {
		cfg.Catalog = DefaultCatalog()
	}
	if cfg.Rand == nil {
		cfg.Rand = NewRand(cfg.Seed)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	pool := NewPool(cfg.Prewarm)
	return &System{
		grid:     grid,
		clock:    clock,
		pool:     pool,
		factory:  NewFactory(pool, cfg.Catalog, cfg.Rand, cfg.Logger),
		logger:   cfg.Logger,
		active:   make([]*Particle, 0, cfg.Prewarm*int(variantCount)),
		emitters: make(map[string]*emitter),
		heading:  Vec2{Y: -1},
	}
}

// Update advances every active particle and returns expired ones to the
// pool. Order of the active list is not preserved.
func (s *System) Update() {
	now := s.clock.Now()
	for i := 0; i < len(s.active); {
		p := s.active[i]
		if p.Update(now) {
			i++
			continue
		}
		last := len(s.active) - 1
		s.active[i] = s.active[last]
		s.active[last] = nil
		s.active = s.active[:last]
		s.pool.Release(p)
		s.recycled++
	}
}

// Draw renders the active particles in list order.
func (s *System) Draw(c Canvas) {
	for _, p := range s.active {
		p.Render(c)
	}
}

// CreateFoodEffect spawns the effect of a collected food at a grid cell.
// Orbit particles start at the ring center and take their place on the
// ring in Update, so hosts call Update before the next Draw.
func (s *System) CreateFoodEffect(pos GridPos, foodType string, score, multiplier int) {
	s.active = s.factory.CreateFoodEffect(s.active, s.grid.CellCenter(pos), s.grid.CellSize(),
		foodType, score, multiplier, s.clock.Now())
}

// CreatePowerUpEffect spawns the effect of a collected power-up.
func (s *System) CreatePowerUpEffect(pos GridPos, kind string) {
	s.active = s.factory.CreatePowerUpEffect(s.active, s.grid.CellCenter(pos), s.grid.CellSize(),
		kind, s.clock.Now())
}

// UpdateActiveEffect is called every frame while a status effect is on.
// It emits at most one burst per EmitInterval of the effect's config.
func (s *System) UpdateActiveEffect(kind string, pos GridPos) {
	cfg := s.factory.activeEffect(kind)
	e, ok := s.emitters[kind]
	if !ok {
		e = &emitter{}
		s.emitters[kind] = e
	}
	now := s.clock.Now()
	if !e.ready(now, cfg.EmitInterval) {
		return
	}
	dir := Vec2{Y: -1}
	if cfg.Direction == DirectionHeading {
		dir = s.heading
	}
	s.active = s.factory.EmitActive(s.active, s.grid.CellCenter(pos), s.grid.CellSize(), &cfg, dir, now)
}

// StopActiveEffect forgets the rate limiter of kind so the next activation
// emits immediately. Particles already emitted play out.
func (s *System) StopActiveEffect(kind string) {
	delete(s.emitters, kind)
}

// SetHeading sets the movement direction used by heading-biased emission.
func (s *System) SetHeading(h Vec2) {
	if h.IsZero() {
		return
	}
	s.heading = h.Scale(1 / h.Len())
}

// Clear returns every active particle to the pool.
func (s *System) Clear() {
	for i, p := range s.active {
		s.pool.Release(p)
		s.active[i] = nil
	}
	s.recycled += len(s.active)
	if len(s.active) > 0 {
		s.logger.Printf("cleared %d active particles", len(s.active))
	}
	s.active = s.active[:0]
	clear(s.emitters)
}

// Active returns the live particle list. Callers must not retain it
// across frames.
func (s *System) Active() []*Particle { return s.active }

// Pool exposes the backing pool for inspection.
func (s *System) Pool() *Pool { return s.pool }

func (s *System) Stats() Stats {
	return Stats{
		Active:    len(s.active),
		Free:      s.pool.TotalFree(),
		Allocated: s.pool.TotalAllocated(),
		Spawned:   s.factory.Spawned(),
		Skipped:   s.factory.Skipped(),
		Recycled:  s.recycled,
	}
}
