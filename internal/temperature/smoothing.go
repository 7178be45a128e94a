package temperature

import (
	"github.com/clevofan/clevofan/internal/configuration"
	"github.com/clevofan/clevofan/internal/util"
)

// SmoothingStage transforms a raw temperature sample stream into a
// smoothed one. Stages carry their window state across ticks.
type SmoothingStage interface {
	// Smooth consumes the next sample and returns the smoothed value.
	Smooth(value float64) float64
}

// MovingAverage smooths the temperature curve using the arithmetic
// mean of the most recent samples. Compared to the moving median it is
// more sensitive to short spikes, but reacts faster to sudden, strong
// temperature changes.
type MovingAverage struct {
	windowSize int
	window     []float64
}

func NewMovingAverage(windowSize int) *MovingAverage {
	return &MovingAverage{
		windowSize: windowSize,
		window:     make([]float64, 0, windowSize),
	}
}

func (s *MovingAverage) Smooth(value float64) float64 {
	s.window = appendToWindow(s.window, s.windowSize, value)
	if containsFailed(s.window) {
		return Failed()
	}
	return util.Avg(s.window)
}

// MovingMedian smooths the temperature curve using the median of the
// most recent samples. Compared to the moving average it is better at
// hiding short spikes, but also more sluggish in reacting to real,
// longer-lasting temperature surges.
type MovingMedian struct {
	windowSize int
	window     []float64
}

func NewMovingMedian(windowSize int) *MovingMedian {
	return &MovingMedian{
		windowSize: windowSize,
		window:     make([]float64, 0, windowSize),
	}
}

func (s *MovingMedian) Smooth(value float64) float64 {
	s.window = appendToWindow(s.window, s.windowSize, value)
	if containsFailed(s.window) {
		return Failed()
	}
	return util.Median(s.window)
}

// appendToWindow pushes value into the window, evicting the oldest
// sample when the window is at capacity. The window may hold fewer
// samples than its size right after startup.
func appendToWindow(window []float64, size int, value float64) []float64 {
	window = append(window, value)
	if len(window) > size {
		window = window[1:]
	}
	return window
}

// A single failed sample must not be diluted into a finite blend, the
// whole window output turns into the sentinel instead.
func containsFailed(window []float64) bool {
	for _, value := range window {
		if IsFailed(value) {
			return true
		}
	}
	return false
}

// Chain applies the given stages in order. An empty chain passes
// samples through unchanged.
type Chain struct {
	stages []SmoothingStage
}

func NewChain(stages ...SmoothingStage) *Chain {
	return &Chain{
		stages: stages,
	}
}

// NewChainFromConfig builds the smoothing chain for the given
// configuration. When both options are enabled the moving average is
// applied first, then the moving median, each over its own window.
func NewChainFromConfig(config configuration.Configuration) *Chain {
	var stages []SmoothingStage
	if config.MovingAverageWindow > 0 {
		stages = append(stages, NewMovingAverage(config.MovingAverageWindow))
	}
	if config.MovingMedianWindow > 0 {
		stages = append(stages, NewMovingMedian(config.MovingMedianWindow))
	}
	return NewChain(stages...)
}

func (c *Chain) Smooth(value float64) float64 {
	for _, stage := range c.stages {
		value = stage.Smooth(value)
	}
	return value
}
