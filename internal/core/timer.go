package core

import "time"

// FixedStep converts wall-clock time into a whole number of playback steps at
// a steady steps-per-second rate, independent of the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
// The first call to Due always yields one step.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	f.step = time.Second / time.Duration(rate)
}

// Due reports how many steps have elapsed since the previous call. Whole
// steps are consumed; the remainder carries over to the next call.
func (f *FixedStep) Due() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator < f.step {
		return 0
	}
	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	return n
}
