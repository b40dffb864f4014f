package game

import (
	"fmt"
	"time"
)

// Clock accumulates time handed to Tick since its last reset.
type Clock struct {
	Elapsed time.Duration
}

func (cl *Clock) String() string {
	return fmt.Sprintf("%d.%03ds", int(cl.Elapsed.Seconds()), cl.Elapsed.Milliseconds()%1000)
}

func (cl *Clock) Advance(d time.Duration) {
	if d > 0 {
		cl.Elapsed += d
	}
}

// Reached reports whether at least d has accumulated.
func (cl *Clock) Reached(d time.Duration) bool {
	return cl.Elapsed >= d
}

// Exceeded reports whether more than d has accumulated.
func (cl *Clock) Exceeded(d time.Duration) bool {
	return cl.Elapsed > d
}

func (cl *Clock) Reset() {
	cl.Elapsed = 0
}
