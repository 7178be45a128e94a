package curves

import (
	"fmt"
	"math"

	"github.com/clevofan/clevofan/internal/configuration"
	"github.com/clevofan/clevofan/internal/util"
)

const (
	// MinDuty is the lowest fan duty, in percent.
	MinDuty = 0.0
	// MaxDuty is the highest fan duty, in percent.
	MaxDuty = 100.0
)

// DutyCurve maps a core temperature to a fan duty. Curves are pure
// functions, selected once at startup.
type DutyCurve interface {
	// Evaluate returns the fan duty for the given temperature in °C.
	// The result is always within [MinDuty..MaxDuty]; a failed
	// (infinite) temperature always evaluates to MaxDuty.
	Evaluate(temp float64) float64
}

func NewDutyCurve(config configuration.CurveConfig) (DutyCurve, error) {
	if config.Linear != nil {
		return &LinearDutyCurve{
			Config: *config.Linear,
		}, nil
	}

	if config.Exponential != nil {
		return &ExponentialDutyCurve{
			Config: *config.Exponential,
		}, nil
	}

	if config.Quadratic != nil {
		return &QuadraticDutyCurve{
			Config: *config.Quadratic,
		}, nil
	}

	return nil, fmt.Errorf("no matching curve type in configuration")
}

// saturate clamps the computed duty into the valid range. Infinite
// inputs saturate at MaxDuty, never at NaN or an overflow.
func saturate(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 1) {
		return MaxDuty
	}
	return util.Coerce(value, MinDuty, MaxDuty)
}
