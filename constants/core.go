package constants

import "time"

// Simulation Timing
const (
	// SimulationTicks is the number of simulated seconds in one run
	SimulationTicks = 30

	// TickInterval is the wall-clock length of one simulated second
	TickInterval = 1 * time.Second
)

// Field bounds shared by every bee (inclusive on both ends)
const (
	FieldMin = 0.0
	FieldMax = 100.0
)

// Debug log file
const (
	LogDir      = "logs"
	LogFileName = "bee-sim.log"

	// MaxLogSize triggers rotation of the existing log file at startup
	MaxLogSize = 10 * 1024 * 1024
)
