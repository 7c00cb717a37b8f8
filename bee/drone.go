package bee

import (
	"sync"

	"github.com/lixenwraith/bee-sim/constants"
	"github.com/lixenwraith/bee-sim/vmath"
)

// DroneBee flies straight on a random heading, picks a fresh heading every
// period ticks and never leaves its field
type DroneBee struct {
	mu sync.Mutex

	pos       vmath.Point
	speed     float64
	direction float64 // radians
	countdown int
	period    int

	field   vmath.Rect
	heading HeadingSource
}

// NewDroneBee creates a drone at start and draws its first heading.
// A period below one is treated as one.
func NewDroneBee(start vmath.Point, speed float64, period int, field vmath.Rect, heading HeadingSource) *DroneBee {
	if period < 1 {
		period = 1
	}
	d := &DroneBee{
		pos:     start,
		speed:   speed,
		period:  period,
		field:   field,
		heading: heading,
	}
	d.changeDirection()
	return d
}

// Name returns the console label
func (d *DroneBee) Name() string {
	return constants.DroneName
}

// changeDirection requires d.mu held (or d unpublished)
func (d *DroneBee) changeDirection() {
	d.direction = vmath.DegToRad(d.heading.IntN(360))
	d.countdown = d.period
}

// Move advances one tick along the current heading and clamps to the field
func (d *DroneBee) Move() Event {
	d.mu.Lock()
	defer d.mu.Unlock()

	ev := EventNone
	if d.countdown == 0 {
		d.changeDirection()
		ev = EventHeading
	}

	d.pos = vmath.Clamp(d.field, d.pos.Add(vmath.FromHeading(d.direction, d.speed)))
	d.countdown--
	return ev
}

// Position returns a copy of the current position
func (d *DroneBee) Position() vmath.Point {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pos
}

// Direction returns the current heading in radians
func (d *DroneBee) Direction() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.direction
}
