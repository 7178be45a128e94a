package configuration

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// ExponentialBase is the base of the exponential duty curve.
type ExponentialBase int

const (
	// BaseEuler uses the natural exponential function (e^x).
	BaseEuler ExponentialBase = iota
	// BaseBinary uses the binary exponential function (2^x).
	BaseBinary
)

func (b ExponentialBase) String() string {
	switch b {
	case BaseBinary:
		return "2"
	default:
		return "e"
	}
}

// ParseExponentialBase parses the string representation used on the
// command line, one of: e | euler | 2 | bin | binary
func ParseExponentialBase(value string) (ExponentialBase, error) {
	switch value {
	case "e", "euler":
		return BaseEuler, nil
	case "2", "bin", "binary":
		return BaseBinary, nil
	}
	return BaseEuler, fmt.Errorf("invalid exponential base: %s", value)
}

// ExponentialBaseHookFunc returns a mapstructure decode hook that
// parses an ExponentialBase from its string form.
func ExponentialBaseHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(ExponentialBase(0)) {
			return data, nil
		}
		if f.Kind() != reflect.String {
			return data, nil
		}
		return ParseExponentialBase(data.(string))
	}
}
