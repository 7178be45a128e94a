package temperature

import (
	"math"
	"testing"

	"github.com/clevofan/clevofan/internal/configuration"
	"github.com/stretchr/testify/assert"
)

func TestFailedSentinel(t *testing.T) {
	assert.True(t, IsFailed(Failed()))
	assert.True(t, math.IsInf(Failed(), 1))
	assert.False(t, IsFailed(100))
}

func TestMovingAverageConvergesToConstantInput(t *testing.T) {
	// GIVEN
	windowSize := 5
	stage := NewMovingAverage(windowSize)

	// WHEN
	var result float64
	for i := 0; i < windowSize; i++ {
		result = stage.Smooth(42.0)
	}

	// THEN
	assert.Equal(t, 42.0, result)
}

func TestMovingAveragePartialWindow(t *testing.T) {
	// GIVEN
	stage := NewMovingAverage(10)

	// WHEN
	first := stage.Smooth(40)
	second := stage.Smooth(60)

	// THEN
	assert.Equal(t, 40.0, first)
	assert.Equal(t, 50.0, second)
}

func TestMovingAverageEvictsOldestSample(t *testing.T) {
	// GIVEN
	stage := NewMovingAverage(2)
	stage.Smooth(0)
	stage.Smooth(10)

	// WHEN
	result := stage.Smooth(30)

	// THEN
	assert.Equal(t, 20.0, result)
}

func TestMovingMedianOddWindow(t *testing.T) {
	// GIVEN
	stage := NewMovingMedian(3)
	stage.Smooth(10)
	stage.Smooth(50)

	// WHEN
	result := stage.Smooth(30)

	// THEN
	assert.Equal(t, 30.0, result)
}

func TestMovingMedianEvenWindow(t *testing.T) {
	// GIVEN
	stage := NewMovingMedian(4)
	stage.Smooth(10)
	stage.Smooth(40)
	stage.Smooth(20)

	// WHEN
	result := stage.Smooth(30)

	// THEN
	assert.Equal(t, 25.0, result)
}

func TestMovingAveragePropagatesFailedReading(t *testing.T) {
	// GIVEN
	stage := NewMovingAverage(3)
	stage.Smooth(40)
	stage.Smooth(Failed())

	// WHEN
	result := stage.Smooth(40)

	// THEN
	assert.True(t, IsFailed(result))
}

func TestMovingMedianPropagatesFailedReading(t *testing.T) {
	// GIVEN
	// an odd window where a single infinite sample would not
	// surface as the middle value of the sorted window
	stage := NewMovingMedian(3)
	stage.Smooth(40)
	stage.Smooth(Failed())

	// WHEN
	result := stage.Smooth(40)

	// THEN
	assert.True(t, IsFailed(result))
}

func TestFailedReadingLeavesWindowAfterEviction(t *testing.T) {
	// GIVEN
	stage := NewMovingAverage(2)
	stage.Smooth(Failed())

	// WHEN
	stage.Smooth(40)
	result := stage.Smooth(40)

	// THEN
	assert.Equal(t, 40.0, result)
}

func TestEmptyChainPassesThrough(t *testing.T) {
	// GIVEN
	chain := NewChain()

	// WHEN
	result := chain.Smooth(61.5)

	// THEN
	assert.Equal(t, 61.5, result)
}

func TestChainAppliesAverageBeforeMedian(t *testing.T) {
	// GIVEN
	chain := NewChainFromConfig(configuration.Configuration{
		MovingAverageWindow: 2,
		MovingMedianWindow:  3,
	})

	// WHEN
	outputs := []float64{
		chain.Smooth(0),
		chain.Smooth(100),
		chain.Smooth(0),
	}

	// THEN
	// average stage yields [0, 50, 50], the median stage over those
	// yields [0, 25, 50]; the reverse order would end at 25
	assert.Equal(t, []float64{0, 25, 50}, outputs)
}

func TestChainFromConfigWithoutSmoothing(t *testing.T) {
	// GIVEN
	chain := NewChainFromConfig(configuration.Configuration{})

	// WHEN
	result := chain.Smooth(77)

	// THEN
	assert.Equal(t, 77.0, result)
}
