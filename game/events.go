package game

import "snakefx/particle"

// EventType identifies what happened on the board
type EventType int

const (
	EventFoodCollected EventType = iota
	EventPowerUpCollected
	EventPowerUpExpired
	EventBoardReset
)

// Event is a board occurrence the effect layer reacts to
type Event struct {
	Type EventType
	Pos  particle.GridPos
	// Kind is the food type or power-up kind
	Kind string
	// Score is the base value of a collected food
	Score      int
	Multiplier int
}

type EventHandler func(Event)

// EventBus queues events during a tick and delivers them in FIFO order
// when DispatchAll runs. Events published by handlers wait for the next
// dispatch.
type EventBus struct {
	handlers map[EventType][]EventHandler
	queue    []Event
	spare    []Event
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

// Subscribe registers fn for t. Handlers run in registration order.
func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Publish(e Event) {
	eb.queue = append(eb.queue, e)
}

// DispatchAll drains the queue and returns the number of events delivered
func (eb *EventBus) DispatchAll() int {
	events := eb.queue
	eb.queue = eb.spare[:0]
	for _, e := range events {
		for _, fn := range eb.handlers[e.Type] {
			fn(e)
		}
	}
	eb.spare = events[:0]
	return len(events)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int { return len(eb.queue) }

func (eb *EventBus) HandlerCount(t EventType) int { return len(eb.handlers[t]) }

// Bind routes board events into the particle system
func Bind(bus *EventBus, system *particle.System) {
	bus.Subscribe(EventFoodCollected, func(e Event) {
		system.CreateFoodEffect(e.Pos, e.Kind, e.Score, e.Multiplier)
	})
	bus.Subscribe(EventPowerUpCollected, func(e Event) {
		system.CreatePowerUpEffect(e.Pos, e.Kind)
	})
	bus.Subscribe(EventPowerUpExpired, func(e Event) {
		system.StopActiveEffect(e.Kind)
	})
	bus.Subscribe(EventBoardReset, func(Event) {
		system.Clear()
	})
}
