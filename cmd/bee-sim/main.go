// Command bee-sim flies a worker bee and a drone bee over a 100x100 field
// and prints both positions once per simulated second.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bee-sim/audio"
	"github.com/lixenwraith/bee-sim/bee"
	"github.com/lixenwraith/bee-sim/constants"
	"github.com/lixenwraith/bee-sim/core"
	"github.com/lixenwraith/bee-sim/engine"
	"github.com/lixenwraith/bee-sim/render"
	"github.com/lixenwraith/bee-sim/vmath"
)

const (
	modeConcurrent = "concurrent"
	modeSequential = "sequential"
	modeTerminal   = "tui"
)

var (
	modeFlag     = flag.String("mode", modeConcurrent, "Run mode: concurrent, sequential, tui")
	ticksFlag    = flag.Int("ticks", constants.SimulationTicks, "Number of simulated seconds")
	intervalFlag = flag.Duration("interval", constants.TickInterval, "Wall-clock length of one tick")
	seedFlag     = flag.Uint64("seed", 0, "Drone heading seed (0 = time based)")
	soundFlag    = flag.Bool("sound", false, "Play audio cues on bee events")
	debugFlag    = flag.Bool("debug", false, "Write debug log to "+constants.LogDir+"/"+constants.LogFileName)
)

type options struct {
	mode     string
	ticks    int
	interval time.Duration
	seed     uint64
	sound    bool
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := options{
		mode:     *modeFlag,
		ticks:    *ticksFlag,
		interval: *intervalFlag,
		seed:     *seedFlag,
		sound:    *soundFlag,
	}
	if err := run(ctx, opts, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "bee-sim: %v\n", err)
		return 1
	}
	return 0
}

func newBees(seed uint64) (*bee.WorkerBee, *bee.DroneBee) {
	worker := bee.NewWorkerBee(
		vmath.Point{X: constants.WorkerHomeX, Y: constants.WorkerHomeY},
		constants.WorkerSpeed,
	)
	drone := bee.NewDroneBee(
		vmath.Point{X: constants.DroneStartX, Y: constants.DroneStartY},
		constants.DroneSpeed,
		constants.DroneHeadingPeriod,
		vmath.NewRect(constants.FieldMin, constants.FieldMax),
		rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	)
	return worker, drone
}

func run(ctx context.Context, opts options, stdout io.Writer) error {
	if opts.ticks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", opts.ticks)
	}
	if opts.interval < 0 {
		return fmt.Errorf("interval must not be negative, got %v", opts.interval)
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("starting: mode=%s ticks=%d interval=%v seed=%d", opts.mode, opts.ticks, opts.interval, seed)

	listeners := engine.Listeners{engine.LogListener{}}
	if opts.sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the simulation runs without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sm.Cleanup()
			listeners = append(listeners, sm)
		}
	}

	worker, drone := newBees(seed)
	cfg := engine.Config{Ticks: opts.ticks, Interval: opts.interval}

	switch opts.mode {
	case modeSequential:
		sim := engine.NewSimulation(cfg, worker, drone, engine.WithListener(listeners))
		return sim.RunSequential(ctx, render.NewTextReporter(stdout))
	case modeConcurrent:
		sim := engine.NewSimulation(cfg, worker, drone, engine.WithListener(listeners))
		return sim.RunConcurrent(ctx, render.NewTextReporter(stdout))
	case modeTerminal:
		return runTerminal(ctx, cfg, worker, drone, listeners)
	default:
		return fmt.Errorf("unknown mode %q", opts.mode)
	}
}

func runTerminal(ctx context.Context, cfg engine.Config, worker, drone bee.Mover, listener engine.Listener) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetResetHook(screen.Fini)
	defer core.SetResetHook(nil)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	clock := engine.NewPausableClock(engine.NewMonotonicClock())
	view := render.NewTerminalView(screen, clock)
	view.Start(cancel)
	defer view.Close()

	sim := engine.NewSimulation(cfg, worker, drone,
		engine.WithClock(clock),
		engine.WithListener(listener),
	)
	return sim.RunConcurrent(ctx, view)
}
