package temperature

import "math"

// Temperatures are plain float64 values in degrees Celsius. A reading
// that could not be acquired is represented as positive infinity so
// that it dominates every downstream comparison and sum: a failed
// sensor always drives the fan towards full duty.

// Failed returns the sentinel value substituted for a failed reading.
func Failed() float64 {
	return math.Inf(1)
}

// IsFailed reports whether the given value is the failure sentinel.
func IsFailed(value float64) bool {
	return math.IsInf(value, 1)
}
