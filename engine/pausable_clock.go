package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock wraps a Clock so sleepers are held while paused.
// A sleeper finishes its own duration first, then waits for Resume.
type PausableClock struct {
	mu sync.Mutex

	base Clock

	isPaused        atomic.Bool
	resume          chan struct{} // closed on Resume, nil while running
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewPausableClock wraps base
func NewPausableClock(base Clock) *PausableClock {
	return &PausableClock{base: base}
}

// Now returns the underlying time (unaffected by pause)
func (pc *PausableClock) Now() time.Time {
	return pc.base.Now()
}

// Sleep sleeps on the base clock, then blocks while the clock is paused
func (pc *PausableClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := pc.base.Sleep(ctx, d); err != nil {
		return err
	}
	for {
		pc.mu.Lock()
		ch := pc.resume
		pc.mu.Unlock()
		if ch == nil {
			return nil
		}

		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Pause holds subsequent sleepers until Resume
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.resume = make(chan struct{})
		pc.pauseStartTime = pc.base.Now()
	}
}

// Resume releases held sleepers
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.totalPausedTime += pc.base.Now().Sub(pc.pauseStartTime)
		pc.pauseStartTime = time.Time{}
		close(pc.resume)
		pc.resume = nil
	}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// GetTotalPauseDuration returns cumulative pause time, including a pause in progress
func (pc *PausableClock) GetTotalPauseDuration() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() {
		total += pc.base.Now().Sub(pc.pauseStartTime)
	}
	return total
}
