package scene

// clockEpsilon absorbs float drift from summing frame-sized steps.
const clockEpsilon = 1e-9

// Timer is a one-shot callback scheduled on a Timers clock.
type Timer struct {
	at      float64
	fn      func()
	stopped bool
	fired   bool
}

// Stop cancels the timer. It returns true if the call prevented the callback
// from running.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Timers is a virtual clock advanced by the scene tick. Callbacks run inside
// Advance, on the caller's goroutine, in deadline order.
type Timers struct {
	now     float64
	pending []*Timer
}

// Now returns the clock reading in seconds.
func (ts *Timers) Now() float64 {
	return ts.now
}

// AfterFunc schedules fn to run once the clock has moved delay seconds
// forward.
func (ts *Timers) AfterFunc(delay float64, fn func()) *Timer {
	t := &Timer{at: ts.now + delay, fn: fn}
	ts.pending = append(ts.pending, t)
	return t
}

// Advance moves the clock forward by dt and runs every timer that became due.
func (ts *Timers) Advance(dt float64) {
	ts.now += dt
	for {
		next := -1
		for i, t := range ts.pending {
			if t.stopped || t.at > ts.now+clockEpsilon {
				continue
			}
			if next < 0 || t.at < ts.pending[next].at {
				next = i
			}
		}
		if next < 0 {
			break
		}
		t := ts.pending[next]
		ts.pending = append(ts.pending[:next], ts.pending[next+1:]...)
		t.fired = true
		t.fn()
	}
	ts.compact()
}

// StopAll cancels every pending timer.
func (ts *Timers) StopAll() {
	for _, t := range ts.pending {
		t.Stop()
	}
	ts.pending = nil
}

// Pending returns the number of timers that have neither fired nor stopped.
func (ts *Timers) Pending() int {
	n := 0
	for _, t := range ts.pending {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (ts *Timers) compact() {
	kept := ts.pending[:0]
	for _, t := range ts.pending {
		if !t.stopped {
			kept = append(kept, t)
		}
	}
	ts.pending = kept
}
