package game

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"snakefx/particle"
)

var (
	backgroundColor = color.RGBA{20, 20, 40, 255}
	boardColor      = color.RGBA{30, 30, 60, 255}
	snakeColor      = color.RGBA{80, 220, 120, 255}
	headColor       = color.RGBA{160, 255, 180, 255}
)

// Game runs the demo board inside ebiten
type Game struct {
	config   Config
	session  *Session
	renderer *Renderer
	input    InputProvider
	profiler *Profiler
	logger   *log.Logger

	commands   []Command
	showHUD    bool
	updateCost time.Duration
	width      int
	height     int
}

// NewGame creates a new game instance reading the keyboard
func NewGame(config Config, logger *log.Logger) *Game {
	return NewGameWithInput(config, logger, NewKeyboardInput())
}

// NewGameWithInput creates a game driven by input
func NewGameWithInput(config Config, logger *log.Logger, input InputProvider) *Game {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Game{
		config:   config,
		session:  NewSession(config, logger),
		renderer: NewRenderer(),
		input:    input,
		profiler: NewProfiler(config.ProfileDir, config.FrameBudget, logger),
		logger:   logger,
		commands: make([]Command, 0, 8),
		showHUD:  true,
		width:    config.ScreenWidth,
		height:   config.ScreenHeight,
	}
}

// Update applies input and advances the session by one tick
func (g *Game) Update() error {
	start := time.Now()

	g.commands = g.input.Poll(g.commands[:0])
	for _, cmd := range g.commands {
		if cmd == CmdToggleHUD {
			g.showHUD = !g.showHUD
			continue
		}
		g.session.Apply(cmd)
	}
	g.session.Step()

	g.updateCost = time.Since(start)
	return nil
}

// Draw renders the board, the particles and the debug HUD
func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()

	screen.Fill(backgroundColor)
	g.drawBoard(screen)
	g.renderer.Begin(screen)
	g.session.System().Draw(g.renderer)

	stats := g.session.System().Stats()
	if g.showHUD {
		ebitenutil.DebugPrint(screen, g.hudText(stats))
	}
	g.profiler.Observe(g.updateCost+time.Since(start), stats)
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	board := g.session.Board()
	cell := float32(board.Cell)
	vector.DrawFilledRect(screen, float32(board.Origin.X), float32(board.Origin.Y),
		cell*float32(board.Columns), cell*float32(board.Rows), boardColor, false)

	inset := cell * 0.15
	for _, p := range g.session.World().Pickups() {
		o := board.CellOrigin(p.Pos)
		vector.DrawFilledRect(screen, float32(o.X)+inset, float32(o.Y)+inset,
			cell-2*inset, cell-2*inset, g.pickupColor(p), true)
	}

	for i, pos := range g.session.World().Snake() {
		clr := snakeColor
		if i == 0 {
			clr = headColor
		}
		o := board.CellOrigin(pos)
		vector.DrawFilledRect(screen, float32(o.X)+1, float32(o.Y)+1, cell-2, cell-2, clr, false)
	}
}

// pickupColor uses the first palette colour of the pickup's effect
func (g *Game) pickupColor(p Pickup) color.Color {
	catalog := g.session.Catalog()
	cfg, ok := catalog.Food(p.Food)
	if p.PowerUp != "" {
		cfg, ok = catalog.PowerUp(p.PowerUp)
	}
	if !ok || len(cfg.Palette) == 0 {
		return color.White
	}
	r, gr, b := cfg.Palette[0].Clamped().RGB255()
	return color.RGBA{r, gr, b, 255}
}

func (g *Game) hudText(stats particle.Stats) string {
	world := g.session.World()
	state := ""
	if g.session.Paused() {
		state = " [paused]"
	}
	return fmt.Sprintf("FPS %.0f  TPS %.0f%s\nscore %d  x%d  effects %v\n"+
		"particles %d  free %d  allocated %d\nspawned %d  skipped %d  recycled %d\n"+
		"frame avg %v  overruns %d\n"+
		"arrows steer, space burst, p pause, c clear, r reset, tab autopilot, h hud",
		ebiten.ActualFPS(), ebiten.ActualTPS(), state,
		world.Score(), world.Multiplier(), world.ActiveEffects(),
		stats.Active, stats.Free, stats.Allocated,
		stats.Spawned, stats.Skipped, stats.Recycled,
		g.profiler.Average(), g.profiler.Overruns())
}

// Layout follows the window size and refits the board to it
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.session.Board().Resize(outsideWidth, outsideHeight)
		g.logger.Printf("board resized to %dx%d (cell %.1fpx)", outsideWidth, outsideHeight, g.session.Board().Cell)
	}
	return g.width, g.height
}
