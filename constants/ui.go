package constants

import "time"

// Terminal view
const (
	// TrailLength is the number of past positions kept per bee
	TrailLength = 8

	// ViewRefreshInterval is how often the terminal view redraws between reports
	ViewRefreshInterval = 50 * time.Millisecond

	// EventQueueSize buffers terminal input events
	EventQueueSize = 16

	WorkerGlyph = 'W'
	DroneGlyph  = 'D'
	TrailGlyph  = '·'
)
