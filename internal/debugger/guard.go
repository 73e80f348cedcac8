package debugger

import (
	"sync"
	"time"
)

// DebounceWindow separates interrupts meant for the inferior from a
// deliberate "stop the wrapper" request.
const DebounceWindow = time.Second

// Guard debounces SIGINT while a debug session runs. The debugger and
// this wrapper share the controlling terminal, so most interrupts are
// meant for the inferior and must not kill the wrapper: interrupts
// arriving within the window of the previous one are swallowed, while
// an interrupt after a quiet period stops the wrapper.
//
// The timestamp is the only cross-goroutine state in the program; the
// mutex covers handler invocations racing each other on repeated
// signals.
type Guard struct {
	mu     sync.Mutex
	last   time.Time
	window time.Duration
}

// NewGuard returns a Guard whose last-interrupt time starts at now, so
// an interrupt early in the session is swallowed rather than fatal.
func NewGuard(window time.Duration) *Guard {
	return &Guard{last: time.Now(), window: window}
}

// Observe records an interrupt at now and reports whether the wrapper
// should exit: true when the previous interrupt is older than the
// window, false (swallow, timestamp updated) otherwise.
func (g *Guard) Observe(now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if now.Sub(g.last) > g.window {
		return true
	}
	g.last = now
	return false
}
