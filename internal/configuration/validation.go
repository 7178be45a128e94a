package configuration

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// Validate checks CurrentConfig for contradictory or impossible
// startup parameters. A validation error is the only fatal condition
// of the daemon and must prevent the control loop from starting.
func Validate() error {
	return validateConfig(&CurrentConfig)
}

func validateConfig(config *Configuration) error {
	if len(config.ECPath) <= 0 {
		return errors.New("no EC interface path provided")
	}

	if config.PollingInterval <= 0 {
		return errors.New("polling interval must be greater than zero")
	}

	if config.MovingAverageWindow < 0 {
		return fmt.Errorf("invalid moving average window size %d, must be >= 1", config.MovingAverageWindow)
	}
	if config.MovingMedianWindow < 0 {
		return fmt.Errorf("invalid moving median window size %d, must be >= 1", config.MovingMedianWindow)
	}

	if config.MinFanChange < 0 {
		return errors.New("min fan change must be >= 0")
	}
	if config.MaxUnchangedCycles < 0 {
		return errors.New("max unchanged cycles must be >= 0")
	}

	return validateCurve(&config.Curve)
}

func validateCurve(config *CurveConfig) error {
	subConfigs := 0
	if config.Linear != nil {
		subConfigs++
	}
	if config.Exponential != nil {
		subConfigs++
	}
	if config.Quadratic != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return errors.New("only one duty curve can be selected, use one of: linear | exp | square")
	}
	if subConfigs <= 0 {
		return errors.New("no duty curve selected, use one of: linear | exp | square")
	}

	if config.Exponential != nil {
		supportedBases := []ExponentialBase{BaseEuler, BaseBinary}
		if !slices.Contains(supportedBases, config.Exponential.Base) {
			return fmt.Errorf("unsupported exponential base '%s', use one of: e | 2", config.Exponential.Base)
		}
	}

	return nil
}
