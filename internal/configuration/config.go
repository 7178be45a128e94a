package configuration

import (
	"time"

	"github.com/clevofan/clevofan/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Configuration struct {
	ECPath string `json:"ecPath"`

	PollingInterval time.Duration `json:"pollingInterval"`

	MovingAverageWindow int `json:"movingAverageWindow"`
	MovingMedianWindow  int `json:"movingMedianWindow"`

	MinFanChange       float64 `json:"minFanChange"`
	MaxUnchangedCycles int     `json:"maxUnchangedCycles"`

	Monitor bool `json:"monitor"`

	Curve CurveConfig `json:"curve"`
}

var CurrentConfig Configuration

// rawConfig mirrors the flat flag/env namespace before it is folded
// into the nested Configuration.
type rawConfig struct {
	ECPath             string        `mapstructure:"ec-path"`
	Interval           time.Duration `mapstructure:"interval"`
	MovingAverage      int           `mapstructure:"moving-average"`
	MovingMedian       int           `mapstructure:"moving-median"`
	MinFanChange       float64       `mapstructure:"min-fan-change"`
	MaxUnchangedCycles int           `mapstructure:"max-unchanged-cycles"`
	Monitor            bool          `mapstructure:"monitor"`

	Linear       bool    `mapstructure:"linear"`
	LinearSlope  float64 `mapstructure:"linear-slope"`
	LinearOffset float64 `mapstructure:"linear-offset"`

	Exp       bool            `mapstructure:"exp"`
	ExpBase   ExponentialBase `mapstructure:"exp-base"`
	ExpFactor float64         `mapstructure:"exp-factor"`

	Square       bool    `mapstructure:"square"`
	SquareFactor float64 `mapstructure:"square-factor"`
}

// InitConfig prepares the ENV variable binding and default values.
// There is no config file: the whole configuration surface is the
// command line (and matching ENV variables).
func InitConfig() {
	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("ec-path", "/sys/kernel/debug/ec/ec0/io")
	viper.SetDefault("interval", 500*time.Millisecond)
	viper.SetDefault("linear-slope", 1.0)
	viper.SetDefault("linear-offset", 0.0)
	viper.SetDefault("exp-base", "e")
	viper.SetDefault("exp-factor", 1.0)
	viper.SetDefault("square-factor", 0.01)
}

// LoadConfig resolves the flag/env values into CurrentConfig.
func LoadConfig() {
	var raw rawConfig
	err := viper.Unmarshal(&raw, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		ExponentialBaseHookFunc(),
	)))
	if err != nil {
		ui.Fatal("unable to decode configuration, %v", err)
	}
	CurrentConfig = fromRaw(raw)
}

func fromRaw(raw rawConfig) Configuration {
	config := Configuration{
		ECPath:              raw.ECPath,
		PollingInterval:     raw.Interval,
		MovingAverageWindow: raw.MovingAverage,
		MovingMedianWindow:  raw.MovingMedian,
		MinFanChange:        raw.MinFanChange,
		MaxUnchangedCycles:  raw.MaxUnchangedCycles,
		Monitor:             raw.Monitor,
	}

	ecPath, err := homedir.Expand(raw.ECPath)
	if err == nil {
		config.ECPath = ecPath
	}

	if raw.Linear {
		config.Curve.Linear = &LinearCurveConfig{
			Slope:  raw.LinearSlope,
			Offset: raw.LinearOffset,
		}
	}
	if raw.Exp {
		config.Curve.Exponential = &ExponentialCurveConfig{
			Base:   raw.ExpBase,
			Factor: raw.ExpFactor,
		}
	}
	if raw.Square {
		config.Curve.Quadratic = &QuadraticCurveConfig{
			Factor: raw.SquareFactor,
		}
	}

	return config
}
