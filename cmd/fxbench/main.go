// Command fxbench exercises the particle engine without a window: run
// benchmarks frame cost headless, watch renders effects in the terminal.
package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("[fxbench] ")

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func engineLogger(verbose bool) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "[particle] ", log.Ltime|log.Lmicroseconds)
}

func newApp() *cli.Command {
	defaults := defaultBenchOptions()

	return &cli.Command{
		Name:  "fxbench",
		Usage: "benchmark and preview snake board particle effects",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run a scripted effect workload headless and report frame cost",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "frames", Value: defaults.Frames, Usage: "number of frames to simulate"},
					&cli.IntFlag{Name: "seed", Value: int(defaults.Seed), Usage: "seed for spawn randomness and the pickup script"},
					&cli.IntFlag{Name: "cell", Value: int(defaults.Cell), Usage: "grid cell size in pixels"},
					&cli.IntFlag{Name: "prewarm", Value: defaults.Prewarm, Usage: "particles allocated per variant up front"},
					&cli.IntFlag{Name: "every", Value: defaults.Every, Usage: "frames between scripted pickups"},
					&cli.DurationFlag{Name: "budget", Value: defaults.Budget, Usage: "per-frame update+draw budget"},
					&cli.BoolFlag{Name: "verbose", Usage: "log engine diagnostics to stderr"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					opts := defaults
					opts.Frames = int(cmd.Int("frames"))
					opts.Seed = uint64(cmd.Int("seed"))
					opts.Cell = float64(cmd.Int("cell"))
					opts.Prewarm = int(cmd.Int("prewarm"))
					opts.Every = int(cmd.Int("every"))
					opts.Budget = cmd.Duration("budget")

					report, err := runBench(opts, engineLogger(cmd.Bool("verbose")))
					if err != nil {
						return err
					}
					report.write(cmd.Root().Writer, opts.Budget)
					return nil
				},
			},
			{
				Name:  "watch",
				Usage: "render scripted effects in the terminal",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "seed", Value: int(defaults.Seed), Usage: "seed for spawn randomness and the pickup script"},
					&cli.IntFlag{Name: "cell", Value: int(defaults.Cell), Usage: "grid cell size in canvas pixels"},
					&cli.IntFlag{Name: "every", Value: 30, Usage: "frames between scripted pickups"},
					&cli.IntFlag{Name: "fps", Value: 60, Usage: "frames per second"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runWatch(ctx, watchOptions{
						Seed:  uint64(cmd.Int("seed")),
						Cell:  float64(cmd.Int("cell")),
						Every: int(cmd.Int("every")),
						FPS:   int(cmd.Int("fps")),
					}, engineLogger(false))
				},
			},
		},
	}
}
