package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/lixenwraith/bee-sim/constants"
	"github.com/lixenwraith/bee-sim/engine"
)

// Separator closes every console block
const Separator = "---------------------"

// TextReporter prints one block per snapshot:
//
//	Time 3 sec:
//	  WorkerBee: (35.8579, 35.8579)
//	  DroneBee: (22.1, 17.5)
//	---------------------
type TextReporter struct {
	w io.Writer
}

// NewTextReporter writes blocks to w
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Report writes the block for s
func (r *TextReporter) Report(s engine.Snapshot) error {
	_, err := fmt.Fprintf(r.w, "Time %d sec:\n  %s: (%s, %s)\n  %s: (%s, %s)\n%s\n",
		s.Tick,
		constants.WorkerName, FormatCoord(s.Worker.X), FormatCoord(s.Worker.Y),
		constants.DroneName, FormatCoord(s.Drone.X), FormatCoord(s.Drone.Y),
		Separator,
	)
	return err
}

// FormatCoord prints v with six significant digits and no trailing zeros
func FormatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
