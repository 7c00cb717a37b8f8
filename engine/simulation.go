package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lixenwraith/bee-sim/bee"
	"github.com/lixenwraith/bee-sim/constants"
	"github.com/lixenwraith/bee-sim/core"
	"github.com/lixenwraith/bee-sim/vmath"
)

// Config shapes a run: how many ticks and how long each lasts
type Config struct {
	Ticks    int
	Interval time.Duration
}

// DefaultConfig returns 30 ticks of one second
func DefaultConfig() Config {
	return Config{
		Ticks:    constants.SimulationTicks,
		Interval: constants.TickInterval,
	}
}

// Snapshot is what a reporter sees once per tick
type Snapshot struct {
	Tick   int
	Worker vmath.Point
	Drone  vmath.Point
}

// Reporter receives snapshots from the goroutine that called Run*
type Reporter interface {
	Report(s Snapshot) error
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(s Snapshot) error

func (f ReporterFunc) Report(s Snapshot) error { return f(s) }

// Simulation drives one worker and one drone
type Simulation struct {
	cfg      Config
	worker   bee.Mover
	drone    bee.Mover
	clock    Clock
	listener Listener
}

// Option customises a Simulation
type Option func(*Simulation)

// WithClock replaces the monotonic clock
func WithClock(c Clock) Option {
	return func(s *Simulation) { s.clock = c }
}

// WithListener receives every step event. In concurrent runs it is called
// from the stepping goroutines.
func WithListener(l Listener) Option {
	return func(s *Simulation) { s.listener = l }
}

// NewSimulation wires the two bees to a run configuration
func NewSimulation(cfg Config, worker, drone bee.Mover, opts ...Option) *Simulation {
	s := &Simulation{
		cfg:      cfg,
		worker:   worker,
		drone:    drone,
		clock:    NewMonotonicClock(),
		listener: Listeners(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the run configuration
func (s *Simulation) Config() Config {
	return s.cfg
}

func (s *Simulation) snapshot(tick int) Snapshot {
	return Snapshot{
		Tick:   tick,
		Worker: s.worker.Position(),
		Drone:  s.drone.Position(),
	}
}

// RunSequential steps both bees and reports once per tick on the calling goroutine
func (s *Simulation) RunSequential(ctx context.Context, r Reporter) error {
	for tick := 0; tick < s.cfg.Ticks; tick++ {
		s.listener.OnStep(s.worker.Name(), tick, s.worker.Move())
		s.listener.OnStep(s.drone.Name(), tick, s.drone.Move())

		if err := r.Report(s.snapshot(tick)); err != nil {
			return fmt.Errorf("report tick %d: %w", tick, err)
		}
		if err := s.clock.Sleep(ctx, s.cfg.Interval); err != nil {
			return err
		}
	}
	return nil
}

// RunConcurrent steps each bee on its own goroutine while the calling
// goroutine polls positions once per interval. Reads are not ordered
// against the neighbouring steps. Returns after both steppers exit.
func (s *Simulation) RunConcurrent(ctx context.Context, r Reporter) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for _, m := range []bee.Mover{s.worker, s.drone} {
		wg.Add(1)
		core.Go(func() {
			defer wg.Done()
			s.stepLoop(ctx, m)
		})
	}

	err := s.pollLoop(ctx, r)
	if err != nil {
		cancel()
	}
	wg.Wait()
	return err
}

func (s *Simulation) stepLoop(ctx context.Context, m bee.Mover) {
	for tick := 0; tick < s.cfg.Ticks; tick++ {
		s.listener.OnStep(m.Name(), tick, m.Move())
		if s.clock.Sleep(ctx, s.cfg.Interval) != nil {
			return
		}
	}
}

func (s *Simulation) pollLoop(ctx context.Context, r Reporter) error {
	for tick := 0; tick < s.cfg.Ticks; tick++ {
		if err := r.Report(s.snapshot(tick)); err != nil {
			return fmt.Errorf("report tick %d: %w", tick, err)
		}
		if err := s.clock.Sleep(ctx, s.cfg.Interval); err != nil {
			return err
		}
	}
	return nil
}
