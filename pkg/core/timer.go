package core

import "time"

// defaultBacklog is how many ticks FixedStep lets pile up between calls.
const defaultBacklog = 4

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxBacklog  int
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The first call to ShouldStep always reports true.
func NewFixedStep(tps int) *FixedStep {
	return NewFixedStepWithClock(tps, time.Now)
}

// NewFixedStepWithClock is NewFixedStep reading time from now.
func NewFixedStepWithClock(tps int, now func() time.Time) *FixedStep {
	if now == nil {
		now = time.Now
	}
	fs := &FixedStep{now: now, maxBacklog: defaultBacklog}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive values fall back to 30.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 30
	}
	f.step = time.Second / time.Duration(tps)
}

// SetMaxBacklog bounds how many owed ticks survive a long gap between calls.
func (f *FixedStep) SetMaxBacklog(ticks int) {
	f.maxBacklog = max(ticks, 1)
}

// Interval reports the duration of a single tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset forgets elapsed time so the next ShouldStep reports a single tick.
// Call it when resuming after a pause.
func (f *FixedStep) Reset() {
	f.last = time.Time{}
	f.accumulator = f.step
}

// ShouldStep reports whether the simulation should advance by one tick.
// At most one tick is reported per call; a backlog drains on later calls.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if limit := time.Duration(f.maxBacklog) * f.step; f.accumulator > limit {
		f.accumulator = limit
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
