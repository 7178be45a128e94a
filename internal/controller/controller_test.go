package controller

import (
	"errors"
	"testing"
	"time"

	"github.com/clevofan/clevofan/internal/configuration"
	"github.com/clevofan/clevofan/internal/curves"
	"github.com/clevofan/clevofan/internal/hysteresis"
	"github.com/clevofan/clevofan/internal/monitor"
	"github.com/clevofan/clevofan/internal/temperature"
	"github.com/stretchr/testify/assert"
)

type MockReader struct {
	Temps []float64
	Errs  []error

	reads int
}

func (r *MockReader) ReadTemperature() (float64, error) {
	i := r.reads
	r.reads++
	if i < len(r.Errs) && r.Errs[i] != nil {
		return 0, r.Errs[i]
	}
	return r.Temps[i], nil
}

type MockWriter struct {
	Written []float64
	Errs    []error

	writes int
}

func (w *MockWriter) WriteDuty(percent float64) error {
	i := w.writes
	w.writes++
	if i < len(w.Errs) && w.Errs[i] != nil {
		return w.Errs[i]
	}
	w.Written = append(w.Written, percent)
	return nil
}

func linearCurve(slope float64, offset float64) curves.DutyCurve {
	return &curves.LinearDutyCurve{
		Config: configuration.LinearCurveConfig{
			Slope:  slope,
			Offset: offset,
		},
	}
}

func createController(reader *MockReader, writer *MockWriter, filter *hysteresis.Filter, mon *monitor.Monitor) *fanController {
	return &fanController{
		reader:     reader,
		writer:     writer,
		smoothing:  temperature.NewChain(),
		curve:      linearCurve(1, 0),
		filter:     filter,
		updateRate: time.Millisecond,
		monitor:    mon,
	}
}

func TestUpdateDutyWritesCurveValue(t *testing.T) {
	// GIVEN
	reader := &MockReader{Temps: []float64{50}}
	writer := &MockWriter{}
	controller := createController(reader, writer, hysteresis.NewFilter(0, 0), nil)

	// WHEN
	controller.UpdateDuty()

	// THEN
	assert.Equal(t, []float64{50}, writer.Written)
}

func TestAcquisitionFailureWritesSaturatedDuty(t *testing.T) {
	// GIVEN
	reader := &MockReader{
		Temps: []float64{0},
		Errs:  []error{errors.New("read failed")},
	}
	writer := &MockWriter{}
	controller := createController(reader, writer, hysteresis.NewFilter(0, 0), nil)

	// WHEN
	controller.UpdateDuty()

	// THEN
	// the tick must still attempt a write, using the duty derived
	// from the failure sentinel
	assert.Equal(t, []float64{100}, writer.Written)
}

func TestWriteFailureSkipsToNextTick(t *testing.T) {
	// GIVEN
	reader := &MockReader{Temps: []float64{50, 60}}
	writer := &MockWriter{
		Errs: []error{errors.New("write failed")},
	}
	controller := createController(reader, writer, hysteresis.NewFilter(0, 0), nil)

	// WHEN
	controller.UpdateDuty()
	controller.UpdateDuty()

	// THEN
	// the first write failed, the second tick wrote the fresh value
	assert.Equal(t, []float64{60}, writer.Written)
}

func TestHysteresisSuppressesSmallChanges(t *testing.T) {
	// GIVEN
	reader := &MockReader{Temps: []float64{50, 52, 53, 60}}
	writer := &MockWriter{}
	controller := createController(reader, writer, hysteresis.NewFilter(5, 10), nil)

	// WHEN
	for i := 0; i < 4; i++ {
		controller.UpdateDuty()
	}

	// THEN
	assert.Equal(t, []float64{50, 50, 50, 60}, writer.Written)
}

func TestSmoothedValuesAreReportedToMonitor(t *testing.T) {
	// GIVEN
	reader := &MockReader{Temps: []float64{50}}
	writer := &MockWriter{}
	mon := monitor.NewMonitor()
	controller := createController(reader, writer, hysteresis.NewFilter(0, 0), mon)

	// WHEN
	controller.UpdateDuty()

	// THEN
	temp, duty, ok := mon.Current()
	assert.True(t, ok)
	assert.Equal(t, 50.0, temp)
	assert.Equal(t, 50.0, duty)
}

func TestSmoothingIsAppliedBeforeCurveEvaluation(t *testing.T) {
	// GIVEN
	reader := &MockReader{Temps: []float64{40, 60}}
	writer := &MockWriter{}
	controller := createController(reader, writer, hysteresis.NewFilter(0, 0), nil)
	controller.smoothing = temperature.NewChain(temperature.NewMovingAverage(2))

	// WHEN
	controller.UpdateDuty()
	controller.UpdateDuty()

	// THEN
	assert.Equal(t, []float64{40, 50}, writer.Written)
}
