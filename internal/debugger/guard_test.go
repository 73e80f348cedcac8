package debugger

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGuardSwallowsRapidInterrupts(t *testing.T) {
	base := time.Now()
	g := &Guard{last: base, window: time.Second}

	// Two interrupts 200ms apart: both within the window, both swallowed.
	assert.False(t, g.Observe(base.Add(200*time.Millisecond)))
	assert.False(t, g.Observe(base.Add(400*time.Millisecond)))
}

func TestGuardExitsAfterQuietPeriod(t *testing.T) {
	base := time.Now()
	g := &Guard{last: base, window: time.Second}

	assert.False(t, g.Observe(base.Add(500*time.Millisecond)))
	// 1500ms after the recorded interrupt: past the window, terminate.
	assert.True(t, g.Observe(base.Add(2*time.Second)))
}

func TestGuardSwallowedInterruptRefreshesTimestamp(t *testing.T) {
	base := time.Now()
	g := &Guard{last: base, window: time.Second}

	// A chain of sub-window interrupts keeps sliding the window forward.
	for i := 1; i <= 5; i++ {
		assert.False(t, g.Observe(base.Add(time.Duration(i)*900*time.Millisecond)))
	}
	assert.True(t, g.Observe(base.Add(5*900*time.Millisecond).Add(1100*time.Millisecond)))
}

func TestGuardStartsArmed(t *testing.T) {
	g := NewGuard(time.Second)
	// Right after start the last-interrupt time is "now", so an early
	// interrupt is forwarded to the session rather than fatal.
	assert.False(t, g.Observe(time.Now()))
}

// Signal handlers can run concurrently with themselves on repeated
// signals; hammer Observe from many goroutines to exercise the lock.
func TestGuardConcurrentObserve(t *testing.T) {
	base := time.Now()
	g := &Guard{last: base, window: time.Minute}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.False(t, g.Observe(time.Now()))
		}()
	}
	wg.Wait()
}
