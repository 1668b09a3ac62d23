// Package clock holds the master countdown that every item schedules against.
// Values are whole seconds. Not safe for concurrent use; the tick engine
// serializes every access.
package clock

// Bounds reports the longest scheduled duration, used to size the clock.
type Bounds interface {
	LongestDuration() int
}

// Master is the single shared countdown.
type Master struct {
	value int
	armed bool
}

// New returns a clock at 0, disarmed.
func New() *Master {
	return &Master{}
}

// Value returns the current countdown in seconds.
func (m *Master) Value() int { return m.value }

// Armed reports whether the clock is counting down.
func (m *Master) Armed() bool { return m.armed }

// SetTo overrides the clock. Rejected while armed; negative values clamp to 0.
func (m *Master) SetTo(value int) bool {
	if m.armed {
		return false
	}
	m.value = clamp(value)
	return true
}

// RaiseToAtLeast grows the clock to admit a longer item. It never shrinks.
func (m *Master) RaiseToAtLeast(value int) {
	if value > m.value {
		m.value = value
	}
}

// ResetToLongest sets the clock to the longest item duration, 0 without items.
func (m *Master) ResetToLongest(b Bounds) {
	m.value = clamp(b.LongestDuration())
}

// Decrement subtracts one second, floored at 0, and returns the new value.
// Reaching 0 disarms the clock.
func (m *Master) Decrement() int {
	if m.value > 0 {
		m.value--
	}
	if m.value == 0 {
		m.armed = false
	}
	return m.value
}

// Arm starts the countdown. Rejected when the clock is at 0.
func (m *Master) Arm() bool {
	if m.value == 0 {
		return false
	}
	m.armed = true
	return true
}

// Disarm stops the countdown.
func (m *Master) Disarm() {
	m.armed = false
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
