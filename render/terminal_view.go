package render

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bee-sim/constants"
	"github.com/lixenwraith/bee-sim/core"
	"github.com/lixenwraith/bee-sim/engine"
	"github.com/lixenwraith/bee-sim/vmath"
)

// Pauser is the part of engine.PausableClock the view drives
type Pauser interface {
	Toggle() bool
	IsPaused() bool
}

var (
	workerStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 200, 0)).Bold(true)
	droneStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 200, 255)).Bold(true)
	frameStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 90, 90))
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	pauseStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
)

// TerminalView draws the field with both bees on a tcell screen.
// It implements engine.Reporter; input is handled on its own goroutine.
type TerminalView struct {
	mu     sync.Mutex
	screen tcell.Screen
	pauser Pauser
	cancel context.CancelFunc

	last   engine.Snapshot
	have   bool
	worker []vmath.Point // trail, oldest first
	drone  []vmath.Point

	done chan struct{}
}

// NewTerminalView takes ownership of an initialised screen
func NewTerminalView(screen tcell.Screen, pauser Pauser) *TerminalView {
	return &TerminalView{
		screen: screen,
		pauser: pauser,
		worker: make([]vmath.Point, 0, constants.TrailLength),
		drone:  make([]vmath.Point, 0, constants.TrailLength),
		done:   make(chan struct{}),
	}
}

// Start begins reading input; quit keys call cancel
func (v *TerminalView) Start(cancel context.CancelFunc) {
	v.cancel = cancel

	events := make(chan tcell.Event, constants.EventQueueSize)
	core.Go(func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})
	core.Go(func() {
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				v.handleEvent(ev)
			case <-v.done:
				return
			}
		}
	})
	v.draw()
}

// Close stops input handling and restores the terminal
func (v *TerminalView) Close() {
	v.mu.Lock()
	select {
	case <-v.done:
		v.mu.Unlock()
		return
	default:
		close(v.done)
	}
	v.mu.Unlock()
	v.screen.Fini()
}

// Report records the snapshot, extends the trails and redraws
func (v *TerminalView) Report(s engine.Snapshot) error {
	v.mu.Lock()
	v.last = s
	v.have = true
	v.worker = pushTrail(v.worker, s.Worker)
	v.drone = pushTrail(v.drone, s.Drone)
	v.mu.Unlock()

	v.draw()
	return nil
}

func pushTrail(trail []vmath.Point, p vmath.Point) []vmath.Point {
	if len(trail) == constants.TrailLength {
		copy(trail, trail[1:])
		trail = trail[:len(trail)-1]
	}
	return append(trail, p)
}

func (v *TerminalView) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		v.screen.Sync()
		v.draw()
	}
}

func (v *TerminalView) handleKey(key tcell.Key, r rune) {
	switch {
	case key == tcell.KeyEscape, key == tcell.KeyCtrlC, key == tcell.KeyRune && r == 'q':
		if v.cancel != nil {
			v.cancel()
		}
	case key == tcell.KeyRune && r == 'p':
		if v.pauser != nil {
			v.pauser.Toggle()
		}
		v.draw()
	}
}

// project maps a field point into the framed area, y up
func project(p vmath.Point, width, height int) (col, row int) {
	innerW := width - 2
	innerH := height - 3 // frame top, frame bottom, status line
	span := constants.FieldMax - constants.FieldMin

	fx := (p.X - constants.FieldMin) / span
	fy := (p.Y - constants.FieldMin) / span
	col = 1 + int(math.Round(fx*float64(innerW-1)))
	row = innerH - int(math.Round(fy*float64(innerH-1)))
	return col, row
}

func (v *TerminalView) draw() {
	v.mu.Lock()
	defer v.mu.Unlock()

	select {
	case <-v.done:
		return
	default:
	}

	s := v.screen
	s.Clear()
	width, height := s.Size()

	if width >= 4 && height >= 4 {
		drawFrame(s, width, height-1)
		drawTrail(s, v.worker, width, height, 255, 200, 0)
		drawTrail(s, v.drone, width, height, 0, 200, 255)
		if v.have {
			wc, wr := project(v.last.Worker, width, height)
			dc, dr := project(v.last.Drone, width, height)
			s.SetContent(wc, wr, constants.WorkerGlyph, nil, workerStyle)
			s.SetContent(dc, dr, constants.DroneGlyph, nil, droneStyle)
		}
	}

	status := " waiting for first tick"
	if v.have {
		status = fmt.Sprintf(" t=%d  W(%s, %s)  D(%s, %s)",
			v.last.Tick,
			FormatCoord(v.last.Worker.X), FormatCoord(v.last.Worker.Y),
			FormatCoord(v.last.Drone.X), FormatCoord(v.last.Drone.Y))
	}
	style := statusStyle
	if v.pauser != nil && v.pauser.IsPaused() {
		status += "  PAUSED"
		style = pauseStyle
	}
	status += "  [p]ause [q]uit"
	drawText(s, 0, height-1, width, status, style)

	s.Show()
}

func drawFrame(s tcell.Screen, width, height int) {
	for x := 1; x < width-1; x++ {
		s.SetContent(x, 0, tcell.RuneHLine, nil, frameStyle)
		s.SetContent(x, height-1, tcell.RuneHLine, nil, frameStyle)
	}
	for y := 1; y < height-1; y++ {
		s.SetContent(0, y, tcell.RuneVLine, nil, frameStyle)
		s.SetContent(width-1, y, tcell.RuneVLine, nil, frameStyle)
	}
	s.SetContent(0, 0, tcell.RuneULCorner, nil, frameStyle)
	s.SetContent(width-1, 0, tcell.RuneURCorner, nil, frameStyle)
	s.SetContent(0, height-1, tcell.RuneLLCorner, nil, frameStyle)
	s.SetContent(width-1, height-1, tcell.RuneLRCorner, nil, frameStyle)
}

// drawTrail fades older points toward black; the newest point is left for the glyph
func drawTrail(s tcell.Screen, trail []vmath.Point, width, height int, r, g, b int32) {
	n := len(trail)
	for i := 0; i < n-1; i++ {
		intensity := float64(i+1) / float64(n)
		color := tcell.NewRGBColor(
			int32(float64(r)*intensity),
			int32(float64(g)*intensity),
			int32(float64(b)*intensity),
		)
		col, row := project(trail[i], width, height)
		s.SetContent(col, row, constants.TrailGlyph, nil, tcell.StyleDefault.Foreground(color))
	}
}

func drawText(s tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= maxWidth {
			return
		}
		s.SetContent(col, y, r, nil, style)
		col++
	}
	for ; col < maxWidth; col++ {
		s.SetContent(col, y, ' ', nil, style)
	}
}
