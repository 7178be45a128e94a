package curves

import (
	"github.com/clevofan/clevofan/internal/configuration"
	"github.com/clevofan/clevofan/internal/temperature"
)

type QuadraticDutyCurve struct {
	Config configuration.QuadraticCurveConfig `json:"config"`
}

func (c *QuadraticDutyCurve) Evaluate(temp float64) float64 {
	if temperature.IsFailed(temp) {
		return MaxDuty
	}
	return saturate(c.Config.Factor * temp * temp)
}
