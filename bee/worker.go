package bee

import (
	"sync"

	"github.com/lixenwraith/bee-sim/constants"
	"github.com/lixenwraith/bee-sim/vmath"
)

// WorkerBee shuttles between its home and the origin at constant speed
type WorkerBee struct {
	mu sync.Mutex

	home          vmath.Point
	pos           vmath.Point
	target        vmath.Point
	speed         float64
	goingToCorner bool
}

// NewWorkerBee places the bee at home, heading for the origin
func NewWorkerBee(home vmath.Point, speed float64) *WorkerBee {
	return &WorkerBee{
		home:          home,
		pos:           home,
		target:        vmath.Origin,
		speed:         speed,
		goingToCorner: true,
	}
}

// Name returns the console label
func (w *WorkerBee) Name() string {
	return constants.WorkerName
}

// Move advances one tick toward the target, snapping and reversing once
// the target is within one step
func (w *WorkerBee) Move() Event {
	w.mu.Lock()
	defer w.mu.Unlock()

	next, reached := vmath.StepToward(w.pos, w.target, w.speed)
	w.pos = next
	if !reached {
		return EventNone
	}

	if w.goingToCorner {
		w.target = w.home
	} else {
		w.target = vmath.Origin
	}
	w.goingToCorner = !w.goingToCorner
	return EventTurned
}

// Position returns a copy of the current position
func (w *WorkerBee) Position() vmath.Point {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pos
}

// Target returns the point the bee is currently flying to
func (w *WorkerBee) Target() vmath.Point {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.target
}

// GoingToCorner is true while the target is the origin
func (w *WorkerBee) GoingToCorner() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.goingToCorner
}

// Home returns the fixed start point
func (w *WorkerBee) Home() vmath.Point {
	return w.home
}
