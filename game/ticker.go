package game

import "time"

// Ticker decides when a tick is due from a monotonic clock in seconds.
type Ticker struct {
	last float64
}

// Due returns true, and restarts the wait, once interval has passed since
// the last due tick.
func (t *Ticker) Due(now float64, interval time.Duration) bool {
	if now-t.last >= interval.Seconds() {
		t.last = now
		return true
	}
	return false
}
