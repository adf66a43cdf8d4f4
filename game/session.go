package game

import (
	"log"

	"snakefx/particle"
)

// Session runs one board and its particle system on the game goroutine.
// It holds no ebiten state so it can be stepped headless.
type Session struct {
	clock   *particle.StepClock
	board   *Board
	bus     *EventBus
	world   *World
	system  *particle.System
	catalog particle.Catalog
}

// NewSession wires board events to a fresh particle system. A nil logger
// silences the engine.
func NewSession(config Config, logger *log.Logger) *Session {
	clock := particle.NewStepClock(0, config.TickMs)
	board := NewBoard(config)
	bus := NewEventBus()

	sysConfig := particle.DefaultSystemConfig()
	sysConfig.Prewarm = config.Prewarm
	sysConfig.Seed = config.Seed
	sysConfig.Logger = logger
	system := particle.NewSystem(board, clock, sysConfig)
	Bind(bus, system)

	world := NewWorld(board, bus, particle.NewRand(config.Seed+1), config.StepEvery)
	world.Autopilot = config.Autopilot

	return &Session{
		clock:   clock,
		board:   board,
		bus:     bus,
		world:   world,
		system:  system,
		catalog: sysConfig.Catalog,
	}
}

// Apply executes one player command
func (s *Session) Apply(cmd Command) {
	switch cmd {
	case CmdUp:
		s.world.Steer(dirUp)
	case CmdDown:
		s.world.Steer(dirDown)
	case CmdLeft:
		s.world.Steer(dirLeft)
	case CmdRight:
		s.world.Steer(dirRight)
	case CmdPause:
		s.clock.SetPaused(!s.clock.Paused())
	case CmdClear:
		s.system.Clear()
	case CmdReset:
		s.world.Reset()
	case CmdAutopilot:
		s.world.Autopilot = !s.world.Autopilot
	case CmdBurst:
		s.bus.Publish(Event{
			Type:       EventFoodCollected,
			Pos:        s.world.Head(),
			Kind:       particle.FoodGolden,
			Score:      foodScores[particle.FoodGolden],
			Multiplier: s.world.Multiplier(),
		})
	}
}

// Step advances the simulation by one tick. Nothing moves while paused.
func (s *Session) Step() {
	if s.clock.Paused() {
		return
	}
	now := s.clock.Tick()
	s.world.Update(now)
	s.bus.DispatchAll()

	s.system.SetHeading(s.world.Heading())
	head := s.world.Head()
	for _, kind := range s.world.ActiveEffects() {
		s.system.UpdateActiveEffect(kind, head)
	}
	s.system.Update()
}

func (s *Session) Paused() bool { return s.clock.Paused() }

func (s *Session) Board() *Board { return s.board }

func (s *Session) World() *World { return s.world }

func (s *Session) System() *particle.System { return s.system }

// Catalog is the effect catalog the particle system reads
func (s *Session) Catalog() particle.Catalog { return s.catalog }
