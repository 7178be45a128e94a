package monitor

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/clevofan/clevofan/internal/temperature"
	"github.com/clevofan/clevofan/internal/util"
	"github.com/guptarohit/asciigraph"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/pterm/pterm"
)

const (
	keyTemperature = "temperature"
	keyDuty        = "duty"

	historySize    = 60
	peakWindowSize = 60
)

// Monitor is the shared view model between the control loop and the
// terminal display. The loop reports once per tick, the display actor
// renders at its own pace.
type Monitor struct {
	values cmap.ConcurrentMap[string, float64]

	mu          sync.Mutex
	history     []float64
	failedReads int
	peak        *rolling.PointPolicy
}

func NewMonitor() *Monitor {
	return &Monitor{
		values: cmap.New[float64](),
		peak:   util.CreateRollingWindow(peakWindowSize),
	}
}

// Report records the latest (smoothed temperature, applied duty) pair.
// A failed (infinite) temperature is counted instead of graphed.
func (m *Monitor) Report(temp float64, duty float64) {
	m.values.Set(keyDuty, duty)

	m.mu.Lock()
	defer m.mu.Unlock()

	if temperature.IsFailed(temp) {
		m.failedReads++
		return
	}
	m.failedReads = 0

	m.values.Set(keyTemperature, temp)
	m.history = append(m.history, temp)
	if len(m.history) > historySize {
		m.history = m.history[1:]
	}
	m.peak.Append(temp)
}

// Current returns the latest finite temperature and applied duty.
// ok is false until the first report arrived.
func (m *Monitor) Current() (temp float64, duty float64, ok bool) {
	duty, ok = m.values.Get(keyDuty)
	if !ok {
		return 0, 0, false
	}
	temp, _ = m.values.Get(keyTemperature)
	return temp, duty, true
}

// History returns a copy of the recent finite temperature samples.
func (m *Monitor) History() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	history := make([]float64, len(m.history))
	copy(history, m.history)
	return history
}

// PeakTemperature returns the hottest reading of the recent window.
func (m *Monitor) PeakTemperature() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.peak.Reduce(rolling.Max)
}

// FailedReads returns the number of consecutive ticks for which the
// temperature could not be read.
func (m *Monitor) FailedReads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failedReads
}

// Run renders the live view until the context is cancelled. Rendering
// problems are ignored, the display is strictly best-effort.
func (m *Monitor) Run(ctx context.Context, refreshRate time.Duration) error {
	area, err := pterm.DefaultArea.Start()
	if err != nil {
		return nil
	}
	defer func() {
		_ = area.Stop()
	}()

	tick := time.Tick(refreshRate)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
			area.Update(m.render())
		}
	}
}

func (m *Monitor) render() string {
	temp, duty, ok := m.Current()
	if !ok {
		return "Waiting for the first measurement..."
	}

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "Temp: %5.1f°C  Peak: %5.1f°C  Duty: %5.1f%%\n", temp, m.PeakTemperature(), duty)
	if failed := m.FailedReads(); failed > 0 {
		_, _ = fmt.Fprintf(&b, "Sensor unreadable for %d tick(s), assuming the worst\n", failed)
	}

	history := m.History()
	if len(history) >= 2 {
		b.WriteString(asciigraph.Plot(history,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("Temperature °C")))
	}
	return b.String()
}
