package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"snakefx/particle"
)

var (
	ErrCaptureCooldown  = errors.New("capture on cooldown")
	ErrAlreadyProfiling = errors.New("already profiling")
)

const (
	// frameWindow is the number of frames averaged before judging the budget
	frameWindow = 60

	// warmupFrames are ignored so startup allocation does not trigger a capture
	warmupFrames = 180
)

// Profiler watches the cost of each frame and captures a CPU profile and
// execution trace when the rolling average stays over budget.
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
	logger          *log.Logger

	budget   time.Duration
	samples  [frameWindow]time.Duration
	total    time.Duration
	frames   int
	overruns int

	// capture starts a profile; replaced in tests
	capture func(reason string) error
	now     func() time.Time
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, budget time.Duration, logger *log.Logger) *Profiler {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	p := &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
		logger:          logger,
		budget:          budget,
		now:             time.Now,
	}
	p.capture = p.CaptureProfile
	return p
}

// Observe records the cost of one frame. It returns true when the frame
// pushed the rolling average over budget and a capture was started.
func (p *Profiler) Observe(cost time.Duration, stats particle.Stats) bool {
	slot := p.frames % frameWindow
	p.total += cost - p.samples[slot]
	p.samples[slot] = cost
	p.frames++
	if cost > p.budget {
		p.overruns++
	}

	if p.frames < warmupFrames || p.Average() <= p.budget {
		return false
	}
	reason := fmt.Sprintf("frame%dus-active%d", p.Average().Microseconds(), stats.Active)
	if err := p.capture(reason); err != nil {
		return false
	}
	p.logger.Printf("frame budget %v exceeded (avg %v, %d active particles), capturing profile",
		p.budget, p.Average(), stats.Active)
	return true
}

// Average is the mean cost of the last frameWindow frames
func (p *Profiler) Average() time.Duration {
	n := min(p.frames, frameWindow)
	if n == 0 {
		return 0
	}
	return p.total / time.Duration(n)
}

// Overruns counts frames individually over budget
func (p *Profiler) Overruns() int { return p.overruns }

// CaptureProfile captures a CPU profile and trace in the background
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if since := p.now().Sub(p.lastCaptureTime); since < p.captureCooldown {
		return fmt.Errorf("%w (last capture was %v ago)", ErrCaptureCooldown, since)
	}
	if p.isProfiling {
		return ErrAlreadyProfiling
	}

	p.isProfiling = true
	p.lastCaptureTime = p.now()
	baseName := p.baseName(reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()
		if err := p.captureBoth(baseName, p.captureDuration); err != nil {
			p.logger.Printf("profile capture failed: %v", err)
		}
	}()
	return nil
}

// CaptureProfileSync captures a CPU profile and trace, blocking for duration
func (p *Profiler) CaptureProfileSync(reason string, duration time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.captureBoth(p.baseName(reason), duration)
}

func (p *Profiler) baseName(reason string) string {
	return fmt.Sprintf("frame-overrun-%s-%s", p.now().Format("20060102-150405"), reason)
}

func (p *Profiler) captureBoth(baseName string, duration time.Duration) error {
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create profile dir: %w", err)
	}

	var wg sync.WaitGroup
	var cpuErr, traceErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		cpuErr = p.captureCPUProfile(baseName, duration)
	}()
	go func() {
		defer wg.Done()
		traceErr = p.captureTrace(baseName, duration)
	}()
	wg.Wait()

	p.summarize(baseName)
	return errors.Join(cpuErr, traceErr)
}

func (p *Profiler) captureCPUProfile(baseName string, duration time.Duration) error {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(duration)
	pprof.StopCPUProfile()

	p.logger.Printf("CPU profile saved to: %s", profilePath)
	return nil
}

func (p *Profiler) captureTrace(baseName string, duration time.Duration) error {
	tracePath := filepath.Join(p.profilesDir, baseName+".trace")

	file, err := os.Create(tracePath)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(duration)
	trace.Stop()

	p.logger.Printf("Trace saved to: %s", tracePath)
	return nil
}

// summarize logs where the profile went and the heap at capture time
func (p *Profiler) summarize(baseName string) {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	info, err := os.Stat(profilePath)
	if err != nil {
		p.logger.Printf("Could not analyze profile: %v", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.logger.Printf("profile %s (%.2f KB); view with: go tool pprof -http=:8080 %s",
		baseName, float64(info.Size())/1024, profilePath)
	p.logger.Printf("heap at capture: alloc %d KB, objects %d, gc %d",
		m.Alloc/1024, m.HeapObjects, m.NumGC)
}

// IsProfiling returns whether a background capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
