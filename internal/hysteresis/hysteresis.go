package hysteresis

import "math"

// Filter suppresses small duty changes to prevent audible fan speed
// oscillation caused by sensor noise. A change below minChange is held
// back, but never for more than maxUnchangedCycles consecutive ticks,
// which bounds the worst-case lag under a persistent small drift.
type Filter struct {
	minChange          float64
	maxUnchangedCycles int

	lastApplied float64
	suppressed  int
	initialized bool
}

func NewFilter(minChange float64, maxUnchangedCycles int) *Filter {
	return &Filter{
		minChange:          minChange,
		maxUnchangedCycles: maxUnchangedCycles,
	}
}

// Apply decides whether the candidate duty is applied or the last
// applied duty is kept. The very first candidate is always applied.
func (f *Filter) Apply(candidate float64) (applied float64, changed bool) {
	if !f.initialized {
		f.initialized = true
		f.lastApplied = candidate
		return candidate, true
	}

	delta := math.Abs(candidate - f.lastApplied)
	if delta < f.minChange && f.suppressed < f.maxUnchangedCycles {
		f.suppressed++
		return f.lastApplied, false
	}

	f.lastApplied = candidate
	f.suppressed = 0
	return candidate, true
}
