package configuration

// CurveConfig selects the duty curve. Exactly one of the sub-configs
// must be set.
type CurveConfig struct {
	Linear      *LinearCurveConfig      `json:"linear,omitempty"`
	Exponential *ExponentialCurveConfig `json:"exponential,omitempty"`
	Quadratic   *QuadraticCurveConfig   `json:"quadratic,omitempty"`
}

// LinearCurveConfig: duty(temp) = Slope * temp + Offset
type LinearCurveConfig struct {
	Slope  float64 `json:"slope"`
	Offset float64 `json:"offset"`
}

// ExponentialCurveConfig: duty(temp) = Factor * Base^temp
type ExponentialCurveConfig struct {
	Base   ExponentialBase `json:"base"`
	Factor float64         `json:"factor"`
}

// QuadraticCurveConfig: duty(temp) = Factor * temp^2
type QuadraticCurveConfig struct {
	Factor float64 `json:"factor"`
}
