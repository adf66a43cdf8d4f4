package game

import (
	"slices"

	"snakefx/particle"
)

var (
	dirUp    = particle.GridPos{Y: -1}
	dirDown  = particle.GridPos{Y: 1}
	dirLeft  = particle.GridPos{X: -1}
	dirRight = particle.GridPos{X: 1}
)

const (
	initialLength   = 3
	foodOnBoard     = 3
	powerUpsOnBoard = 1

	// powerUpDuration is how long a collected power-up stays active, in ms
	powerUpDuration = 5000.0

	// placeAttempts bounds the random search for a free cell
	placeAttempts = 64
)

var foodScores = map[string]int{
	particle.FoodRegular: 10,
	particle.FoodBonus:   50,
	particle.FoodGolden:  200,
}

var powerUpKinds = []string{
	particle.PowerUpSpeed,
	particle.PowerUpSlow,
	particle.PowerUpGhost,
	particle.PowerUpInvincibility,
	particle.PowerUpMagnet,
	particle.PowerUpMultiplier,
}

// Pickup is a collectible on the board. Exactly one of Food and PowerUp is set.
type Pickup struct {
	Pos     particle.GridPos
	Food    string
	PowerUp string
}

// World is the demo board state: the snake, the pickups and the running
// power-ups. Everything that should produce an effect is published on the bus.
type World struct {
	board *Board
	bus   *EventBus
	rng   particle.Rand

	snake   []particle.GridPos // head first
	dir     particle.GridPos
	next    particle.GridPos
	grow    int
	pickups []Pickup
	effects map[string]float64 // kind -> expiry in clock ms

	score     int
	sinceMove int
	stepEvery int

	// Autopilot steers toward the nearest pickup before every move
	Autopilot bool
}

// NewWorld creates a world and publishes the initial board reset
func NewWorld(board *Board, bus *EventBus, rng particle.Rand, stepEvery int) *World {
	w := &World{
		board:     board,
		bus:       bus,
		rng:       rng,
		effects:   make(map[string]float64),
		stepEvery: max(stepEvery, 1),
	}
	w.Reset()
	return w
}

// Reset puts a fresh snake in the middle of the board and restocks pickups
func (w *World) Reset() {
	mid := particle.GridPos{X: w.board.Columns / 2, Y: w.board.Rows / 2}
	w.snake = w.snake[:0]
	for i := range initialLength {
		w.snake = append(w.snake, w.board.Wrap(particle.GridPos{X: mid.X - i, Y: mid.Y}))
	}
	w.dir, w.next = dirRight, dirRight
	w.grow = 0
	w.pickups = w.pickups[:0]
	clear(w.effects)
	w.score = 0
	w.sinceMove = 0
	w.refill()
	w.bus.Publish(Event{Type: EventBoardReset})
}

// Steer queues a direction change for the next move. Reversing onto the
// neck is ignored.
func (w *World) Steer(d particle.GridPos) {
	if d.X == -w.dir.X && d.Y == -w.dir.Y {
		return
	}
	w.next = d
}

// Update expires power-ups and moves the snake when its step is due
func (w *World) Update(now float64) {
	for _, kind := range w.ActiveEffects() {
		if now >= w.effects[kind] {
			delete(w.effects, kind)
			w.bus.Publish(Event{Type: EventPowerUpExpired, Kind: kind, Pos: w.Head()})
		}
	}

	w.sinceMove++
	if w.sinceMove < w.stepInterval() {
		return
	}
	w.sinceMove = 0
	if w.Autopilot {
		w.steerToNearest()
	}
	w.move(now)
}

func (w *World) stepInterval() int {
	interval := w.stepEvery
	if w.has(particle.PowerUpSpeed) {
		interval = max(interval/2, 1)
	}
	if w.has(particle.PowerUpSlow) {
		interval *= 2
	}
	return interval
}

func (w *World) move(now float64) {
	w.dir = w.next
	head := w.board.Wrap(particle.GridPos{X: w.snake[0].X + w.dir.X, Y: w.snake[0].Y + w.dir.Y})

	body := w.snake
	if w.grow == 0 {
		// the tail moves out of the way this step
		body = body[:len(body)-1]
	}
	if slices.Contains(body, head) && !w.has(particle.PowerUpGhost) && !w.has(particle.PowerUpInvincibility) {
		w.Reset()
		return
	}

	w.snake = slices.Insert(w.snake, 0, head)
	if w.grow > 0 {
		w.grow--
	} else {
		w.snake = w.snake[:len(w.snake)-1]
	}

	if i := w.pickupAt(head); i >= 0 {
		w.collect(w.pickups[i], now)
		w.pickups = slices.Delete(w.pickups, i, i+1)
		w.refill()
	}
}

func (w *World) collect(p Pickup, now float64) {
	if p.PowerUp != "" {
		w.effects[p.PowerUp] = now + powerUpDuration
		w.bus.Publish(Event{Type: EventPowerUpCollected, Pos: p.Pos, Kind: p.PowerUp})
		return
	}
	base := foodScores[p.Food]
	mult := w.Multiplier()
	w.score += base * mult
	w.grow++
	w.bus.Publish(Event{Type: EventFoodCollected, Pos: p.Pos, Kind: p.Food, Score: base, Multiplier: mult})
}

func (w *World) pickupAt(pos particle.GridPos) int {
	return slices.IndexFunc(w.pickups, func(p Pickup) bool { return p.Pos == pos })
}

func (w *World) occupied(pos particle.GridPos) bool {
	return slices.Contains(w.snake, pos) || w.pickupAt(pos) >= 0
}

// refill tops the board up to its food and power-up quota
func (w *World) refill() {
	foods, powerUps := 0, 0
	for _, p := range w.pickups {
		if p.PowerUp != "" {
			powerUps++
		} else {
			foods++
		}
	}
	for ; foods < foodOnBoard; foods++ {
		w.place(Pickup{Food: w.randomFood()})
	}
	for ; powerUps < powerUpsOnBoard; powerUps++ {
		w.place(Pickup{PowerUp: powerUpKinds[int(w.rng.Float64()*float64(len(powerUpKinds)))%len(powerUpKinds)]})
	}
}

func (w *World) place(p Pickup) {
	for range placeAttempts {
		pos := particle.GridPos{
			X: int(w.rng.Float64() * float64(w.board.Columns)),
			Y: int(w.rng.Float64() * float64(w.board.Rows)),
		}
		if !w.board.Contains(pos) || w.occupied(pos) {
			continue
		}
		p.Pos = pos
		w.pickups = append(w.pickups, p)
		return
	}
}

func (w *World) randomFood() string {
	switch r := w.rng.Float64(); {
	case r < 0.1:
		return particle.FoodGolden
	case r < 0.35:
		return particle.FoodBonus
	default:
		return particle.FoodRegular
	}
}

// steerToNearest turns toward the closest pickup by Manhattan distance,
// falling back to a perpendicular turn when the target is straight behind.
func (w *World) steerToNearest() {
	if len(w.pickups) == 0 {
		return
	}
	head := w.snake[0]
	best, bestDist := w.pickups[0].Pos, -1
	for _, p := range w.pickups {
		d := abs(p.Pos.X-head.X) + abs(p.Pos.Y-head.Y)
		if bestDist < 0 || d < bestDist {
			best, bestDist = p.Pos, d
		}
	}

	dx, dy := best.X-head.X, best.Y-head.Y
	var want particle.GridPos
	switch {
	case abs(dx) >= abs(dy) && dx > 0:
		want = dirRight
	case abs(dx) >= abs(dy) && dx < 0:
		want = dirLeft
	case dy > 0:
		want = dirDown
	case dy < 0:
		want = dirUp
	default:
		return
	}
	if want.X == -w.dir.X && want.Y == -w.dir.Y {
		want = particle.GridPos{X: w.dir.Y, Y: w.dir.X}
	}
	w.Steer(want)
}

func (w *World) has(kind string) bool {
	_, ok := w.effects[kind]
	return ok
}

// Multiplier is the score multiplier applied to food collected now
func (w *World) Multiplier() int {
	if w.has(particle.PowerUpMultiplier) {
		return 2
	}
	return 1
}

// ActiveEffects returns the running power-up kinds in sorted order
func (w *World) ActiveEffects() []string {
	kinds := make([]string, 0, len(w.effects))
	for kind := range w.effects {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

func (w *World) Head() particle.GridPos { return w.snake[0] }

// Heading is the unit movement direction in screen space
func (w *World) Heading() particle.Vec2 {
	return particle.Vec2{X: float64(w.dir.X), Y: float64(w.dir.Y)}
}

func (w *World) Snake() []particle.GridPos { return w.snake }

func (w *World) Pickups() []Pickup { return w.pickups }

func (w *World) Score() int { return w.score }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
