package controller

import (
	"context"
	"time"

	"github.com/clevofan/clevofan/internal/curves"
	"github.com/clevofan/clevofan/internal/ec"
	"github.com/clevofan/clevofan/internal/hysteresis"
	"github.com/clevofan/clevofan/internal/monitor"
	"github.com/clevofan/clevofan/internal/temperature"
	"github.com/clevofan/clevofan/internal/ui"
)

type FanController interface {
	// Run executes the control loop until the context is cancelled.
	Run(ctx context.Context) error
	// UpdateDuty advances the loop by one tick.
	UpdateDuty()
}

type fanController struct {
	reader     ec.TemperatureReader
	writer     ec.DutyWriter
	smoothing  *temperature.Chain
	curve      curves.DutyCurve
	filter     *hysteresis.Filter
	updateRate time.Duration
	monitor    *monitor.Monitor
}

func NewFanController(
	reader ec.TemperatureReader,
	writer ec.DutyWriter,
	smoothing *temperature.Chain,
	curve curves.DutyCurve,
	filter *hysteresis.Filter,
	updateRate time.Duration,
	mon *monitor.Monitor,
) FanController {
	return &fanController{
		reader:     reader,
		writer:     writer,
		smoothing:  smoothing,
		curve:      curve,
		filter:     filter,
		updateRate: updateRate,
		monitor:    mon,
	}
}

// Once the loop is running it never fails: every error is handled
// within its tick, so the fan is never left unattended.
func (f *fanController) Run(ctx context.Context) error {
	ui.Info("Starting fan control loop...")

	tick := time.Tick(f.updateRate)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
			f.UpdateDuty()
		}
	}
}

func (f *fanController) UpdateDuty() {
	value, err := f.reader.ReadTemperature()
	if err != nil {
		ui.Error("Cannot read temperature: %v, assuming the worst", err)
		value = temperature.Failed()
	}

	smoothed := f.smoothing.Smooth(value)
	target := f.curve.Evaluate(smoothed)

	applied, changed := f.filter.Apply(target)
	if changed {
		ui.Debug("Setting fan duty to %.1f%% (temperature %.1f°C)", applied, smoothed)
	}

	// the write is attempted every tick, so a failed write is retried
	// naturally with the next measurement
	if err := f.writer.WriteDuty(applied); err != nil {
		ui.Error("Cannot set fan duty: %v", err)
	}

	if f.monitor != nil {
		f.monitor.Report(smoothed, applied)
	}
}
