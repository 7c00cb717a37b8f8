package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// MockClock provides a controllable time source for testing.
// Sleep returns immediately after advancing the mocked time.
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
	sleeps      atomic.Int64
}

// NewMockClock creates a new mock clock with the given start time
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *MockClock) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance advances the current time by the given duration
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Sleep advances the mocked time by d without blocking
func (m *MockClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.sleeps.Add(1)
	m.Advance(d)
	return nil
}

// Sleeps returns how many Sleep calls completed
func (m *MockClock) Sleeps() int {
	return int(m.sleeps.Load())
}
