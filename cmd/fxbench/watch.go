package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"snakefx/particle"
	"snakefx/termfx"
)

type watchOptions struct {
	Seed  uint64
	Cell  float64
	Every int
	FPS   int
}

// runWatch plays scripted pickups in the terminal until q, Esc or Ctrl-C.
// Space fires a pickup, p pauses and c clears.
func runWatch(ctx context.Context, opts watchOptions, logger *log.Logger) error {
	if opts.Cell <= 0 || opts.Every <= 0 || opts.FPS <= 0 {
		return fmt.Errorf("%w: cell, every and fps must be positive", errInvalidOption)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal screen: %w", err)
	}
	defer screen.Fini()

	canvas := termfx.New(screen, termfx.DefaultCellWidth, termfx.DefaultCellHeight)
	step := 1000.0 / float64(opts.FPS)
	clock := particle.NewStepClock(0, step)
	cfg := particle.DefaultSystemConfig()
	cfg.Seed = opts.Seed
	cfg.Logger = logger
	sys := particle.NewSystem(particle.FixedGrid{Cell: opts.Cell}, clock, cfg)

	boardSize := func() (int, int) {
		w, h := canvas.PixelSize()
		return int(w / opts.Cell), int(h / opts.Cell)
	}
	cols, rows := boardSize()
	sc := newScript(opts.Seed+1, cols, rows)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Duration(step * float64(time.Millisecond)))
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					return nil
				case ev.Key() != tcell.KeyRune:
				case ev.Rune() == 'q':
					return nil
				case ev.Rune() == ' ':
					sc.fire(sys, clock.Now())
				case ev.Rune() == 'p':
					clock.SetPaused(!clock.Paused())
				case ev.Rune() == 'c':
					sys.Clear()
				}
			case *tcell.EventResize:
				screen.Sync()
				sc.cols, sc.rows = boardSize()
				sc.cols, sc.rows = max(sc.cols, 1), max(sc.rows, 1)
			}

		case <-ticker.C:
			now := clock.Tick()
			if !clock.Paused() {
				if frame%opts.Every == 0 {
					sc.fire(sys, now)
				}
				sc.sustain(sys, now)
				frame++
			}
			sys.Update()

			screen.Clear()
			sys.Draw(canvas)
			stats := sys.Stats()
			status := fmt.Sprintf(" active %d  free %d  allocated %d  spawned %d  recycled %d  [space] fire [p] pause [c] clear [q] quit",
				stats.Active, stats.Free, stats.Allocated, stats.Spawned, stats.Recycled)
			drawString(screen, 0, 0, status, tcell.StyleDefault.Reverse(true))
			screen.Show()
		}
	}
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	w, _ := screen.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
