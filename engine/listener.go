package engine

import (
	"log"

	"github.com/lixenwraith/bee-sim/bee"
)

// Listener observes every bee step
type Listener interface {
	OnStep(name string, tick int, ev bee.Event)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(name string, tick int, ev bee.Event)

func (f ListenerFunc) OnStep(name string, tick int, ev bee.Event) { f(name, tick, ev) }

// Listeners fans a step out to each member in order
type Listeners []Listener

func (ls Listeners) OnStep(name string, tick int, ev bee.Event) {
	for _, l := range ls {
		l.OnStep(name, tick, ev)
	}
}

// LogListener writes notable events to the standard logger
type LogListener struct{}

func (LogListener) OnStep(name string, tick int, ev bee.Event) {
	if ev == bee.EventNone {
		return
	}
	log.Printf("[%s] tick %d: %s", name, tick, ev)
}
