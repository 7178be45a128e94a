package monitor

import (
	"testing"

	"github.com/clevofan/clevofan/internal/temperature"
	"github.com/stretchr/testify/assert"
)

func TestCurrentBeforeFirstReport(t *testing.T) {
	// GIVEN
	mon := NewMonitor()

	// WHEN
	_, _, ok := mon.Current()

	// THEN
	assert.False(t, ok)
}

func TestReportUpdatesCurrentValues(t *testing.T) {
	// GIVEN
	mon := NewMonitor()

	// WHEN
	mon.Report(55, 40)

	// THEN
	temp, duty, ok := mon.Current()
	assert.True(t, ok)
	assert.Equal(t, 55.0, temp)
	assert.Equal(t, 40.0, duty)
}

func TestPeakTemperature(t *testing.T) {
	// GIVEN
	mon := NewMonitor()
	mon.Report(55, 40)
	mon.Report(72, 60)

	// WHEN
	mon.Report(60, 45)

	// THEN
	assert.Equal(t, 72.0, mon.PeakTemperature())
}

func TestFailedReadingsAreCountedInsteadOfGraphed(t *testing.T) {
	// GIVEN
	mon := NewMonitor()
	mon.Report(55, 40)

	// WHEN
	mon.Report(temperature.Failed(), 100)
	mon.Report(temperature.Failed(), 100)

	// THEN
	assert.Equal(t, 2, mon.FailedReads())
	assert.Equal(t, []float64{55}, mon.History())

	// the last finite temperature stays visible, the duty is current
	temp, duty, ok := mon.Current()
	assert.True(t, ok)
	assert.Equal(t, 55.0, temp)
	assert.Equal(t, 100.0, duty)
}

func TestFailedReadCounterResets(t *testing.T) {
	// GIVEN
	mon := NewMonitor()
	mon.Report(temperature.Failed(), 100)

	// WHEN
	mon.Report(50, 40)

	// THEN
	assert.Equal(t, 0, mon.FailedReads())
}

func TestHistoryIsBounded(t *testing.T) {
	// GIVEN
	mon := NewMonitor()

	// WHEN
	for i := 0; i < historySize+10; i++ {
		mon.Report(float64(i), 40)
	}

	// THEN
	history := mon.History()
	assert.Len(t, history, historySize)
	assert.Equal(t, 10.0, history[0])
}
