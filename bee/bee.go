// Package bee implements the two flying agents and their per-tick motion.
// Each bee guards its own state with a mutex, so Move may run on one
// goroutine while another reads the position.
package bee

import "github.com/lixenwraith/bee-sim/vmath"

// Event flags what happened during a single Move
type Event uint8

const (
	// EventTurned is set when the worker reached its target and reversed
	EventTurned Event = 1 << iota
	// EventHeading is set when the drone drew a new heading
	EventHeading
)

// EventNone is a plain step
const EventNone Event = 0

// Has reports whether all bits of flag are set
func (e Event) Has(flag Event) bool {
	return e&flag == flag && flag != 0
}

func (e Event) String() string {
	switch {
	case e == EventNone:
		return "None"
	case e == EventTurned:
		return "Turned"
	case e == EventHeading:
		return "Heading"
	case e == EventTurned|EventHeading:
		return "Turned|Heading"
	default:
		return "Unknown"
	}
}

// Mover is one tick-driven agent
type Mover interface {
	Name() string
	Move() Event
	Position() vmath.Point
}

// HeadingSource draws uniform integers in [0,n).
// *rand.Rand from math/rand/v2 satisfies it.
type HeadingSource interface {
	IntN(n int) int
}
