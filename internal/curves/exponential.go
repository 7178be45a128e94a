package curves

import (
	"math"

	"github.com/clevofan/clevofan/internal/configuration"
	"github.com/clevofan/clevofan/internal/temperature"
)

type ExponentialDutyCurve struct {
	Config configuration.ExponentialCurveConfig `json:"config"`
}

func (c *ExponentialDutyCurve) Evaluate(temp float64) float64 {
	if temperature.IsFailed(temp) {
		return MaxDuty
	}
	return saturate(c.Config.Factor * exp(c.Config.Base, temp))
}

func exp(base configuration.ExponentialBase, exponent float64) float64 {
	if base == configuration.BaseBinary {
		return math.Exp2(exponent)
	}
	return math.Exp(exponent)
}
