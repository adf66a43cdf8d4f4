package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"slices"
	"time"

	"snakefx/particle"
)

var errInvalidOption = errors.New("invalid option")

type benchOptions struct {
	Frames  int
	Seed    uint64
	Cell    float64
	Prewarm int
	// Every is the number of frames between scripted pickups
	Every  int
	Budget time.Duration
	TickMs float64
}

func defaultBenchOptions() benchOptions {
	return benchOptions{
		Frames:  3600,
		Seed:    1,
		Cell:    40,
		Prewarm: particle.DefaultPrewarm,
		Every:   20,
		Budget:  2 * time.Millisecond,
		TickMs:  1000.0 / 60,
	}
}

func (o benchOptions) validate() error {
	var errs []error
	if o.Frames <= 0 {
		errs = append(errs, fmt.Errorf("%w: frames must be positive, got %d", errInvalidOption, o.Frames))
	}
	if o.Cell <= 0 {
		errs = append(errs, fmt.Errorf("%w: cell must be positive, got %v", errInvalidOption, o.Cell))
	}
	if o.Every <= 0 {
		errs = append(errs, fmt.Errorf("%w: every must be positive, got %d", errInvalidOption, o.Every))
	}
	if o.Prewarm < 0 {
		errs = append(errs, fmt.Errorf("%w: prewarm must not be negative, got %d", errInvalidOption, o.Prewarm))
	}
	return errors.Join(errs...)
}

// benchBoard is the board size the script scatters pickups over.
const (
	benchColumns = 20
	benchRows    = 15
)

type benchReport struct {
	Frames     int
	Update     []time.Duration
	Draw       []time.Duration
	Overruns   int
	PeakActive int
	DrawCalls  int
	Stats      particle.Stats
}

// countingCanvas discards drawing and counts calls.
type countingCanvas struct{ calls int }

func (c *countingCanvas) FillCircle(particle.Vec2, float64, color.NRGBA) { c.calls++ }
func (c *countingCanvas) StrokeCircle(particle.Vec2, float64, float64, color.NRGBA) { c.calls++ }
func (c *countingCanvas) FillPolygon([]particle.Vec2, color.NRGBA) { c.calls++ }
func (c *countingCanvas) DrawText(string, particle.Vec2, float64, float64, color.NRGBA) {
	c.calls++
}
func (c *countingCanvas) SetGlow(float64, color.NRGBA) {}

// runBench drives a headless system for opts.Frames frames and times
// Update and Draw separately.
func runBench(opts benchOptions, logger *log.Logger) (benchReport, error) {
	if err := opts.validate(); err != nil {
		return benchReport{}, err
	}

	clock := particle.NewStepClock(0, opts.TickMs)
	cfg := particle.DefaultSystemConfig()
	cfg.Prewarm = opts.Prewarm
	cfg.Seed = opts.Seed
	cfg.Logger = logger
	sys := particle.NewSystem(particle.FixedGrid{Cell: opts.Cell}, clock, cfg)
	sc := newScript(opts.Seed+1, benchColumns, benchRows)
	canvas := &countingCanvas{}

	report := benchReport{
		Frames: opts.Frames,
		Update: make([]time.Duration, 0, opts.Frames),
		Draw:   make([]time.Duration, 0, opts.Frames),
	}
	for f := 0; f < opts.Frames; f++ {
		now := clock.Tick()
		if f%opts.Every == 0 {
			sc.fire(sys, now)
		}
		sc.sustain(sys, now)

		start := time.Now()
		sys.Update()
		update := time.Since(start)

		start = time.Now()
		sys.Draw(canvas)
		draw := time.Since(start)

		report.Update = append(report.Update, update)
		report.Draw = append(report.Draw, draw)
		if update+draw > opts.Budget {
			report.Overruns++
		}
		report.PeakActive = max(report.PeakActive, len(sys.Active()))
	}
	report.DrawCalls = canvas.calls
	report.Stats = sys.Stats()
	return report, nil
}

// percentile returns the p-th percentile (0..1) of samples.
func percentile(samples []time.Duration, p float64) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	i := int(p * float64(len(sorted)-1))
	return sorted[i]
}

func mean(samples []time.Duration) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	var total time.Duration
	for _, s := range samples {
		total += s
	}
	return total / time.Duration(len(samples))
}

func (r benchReport) write(w io.Writer, budget time.Duration) {
	fmt.Fprintf(w, "frames        %d\n", r.Frames)
	fmt.Fprintf(w, "update        mean %v  p50 %v  p99 %v  max %v\n",
		mean(r.Update), percentile(r.Update, 0.5), percentile(r.Update, 0.99), percentile(r.Update, 1))
	fmt.Fprintf(w, "draw          mean %v  p50 %v  p99 %v  max %v\n",
		mean(r.Draw), percentile(r.Draw, 0.5), percentile(r.Draw, 0.99), percentile(r.Draw, 1))
	fmt.Fprintf(w, "over budget   %d frames above %v\n", r.Overruns, budget)
	fmt.Fprintf(w, "particles     peak %d  active %d  free %d  allocated %d\n",
		r.PeakActive, r.Stats.Active, r.Stats.Free, r.Stats.Allocated)
	fmt.Fprintf(w, "lifecycle     spawned %d  skipped %d  recycled %d\n",
		r.Stats.Spawned, r.Stats.Skipped, r.Stats.Recycled)
	fmt.Fprintf(w, "draw calls    %d\n", r.DrawCalls)
}
