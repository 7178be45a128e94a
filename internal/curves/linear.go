package curves

import (
	"github.com/clevofan/clevofan/internal/configuration"
	"github.com/clevofan/clevofan/internal/temperature"
)

type LinearDutyCurve struct {
	Config configuration.LinearCurveConfig `json:"config"`
}

func (c *LinearDutyCurve) Evaluate(temp float64) float64 {
	if temperature.IsFailed(temp) {
		return MaxDuty
	}
	return saturate(c.Config.Slope*temp + c.Config.Offset)
}
