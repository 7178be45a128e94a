package internal

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/clevofan/clevofan/internal/configuration"
	"github.com/clevofan/clevofan/internal/controller"
	"github.com/clevofan/clevofan/internal/curves"
	"github.com/clevofan/clevofan/internal/ec"
	"github.com/clevofan/clevofan/internal/hysteresis"
	"github.com/clevofan/clevofan/internal/monitor"
	"github.com/clevofan/clevofan/internal/temperature"
	"github.com/clevofan/clevofan/internal/ui"
	"github.com/oklog/run"
)

func RunDaemon() {
	if getProcessOwner() != "root" {
		ui.Fatal("Fan control requires raw EC port access, please run clevofan as root")
	}

	config := configuration.CurrentConfig

	reader, err := ec.NewFileReader(config.ECPath)
	if err != nil {
		ui.Fatal("Unable to open EC interface: %v", err)
	}

	writer, err := ec.NewPortWriter()
	if err != nil {
		ui.Fatal("Unable to open EC control ports: %v", err)
	}

	curve, err := curves.NewDutyCurve(config.Curve)
	if err != nil {
		ui.Fatal("Unable to process curve configuration: %v", err)
	}

	smoothing := temperature.NewChainFromConfig(config)
	filter := hysteresis.NewFilter(config.MinFanChange, config.MaxUnchangedCycles)

	var mon *monitor.Monitor
	if config.Monitor {
		mon = monitor.NewMonitor()
	}

	fanController := controller.NewFanController(
		reader, writer, smoothing, curve, filter, config.PollingInterval, mon)

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		// === control loop
		g.Add(func() error {
			err := fanController.Run(ctx)
			ui.Info("Fan control loop stopped.")
			return err
		}, func(err error) {
			if err != nil {
				ui.Warning("Error running fan controller: %v", err)
			}
		})
	}
	if mon != nil {
		// === live monitor view
		g.Add(func() error {
			return mon.Run(ctx, config.PollingInterval)
		}, func(err error) {
			// display problems never interrupt fan control
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			<-sig
			ui.Info("Received termination signal, exiting...")
			return nil
		}, func(err error) {
			defer close(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ui.Info("Done.")
}

func getProcessOwner() string {
	stdout, err := exec.Command("ps", "-o", "user=", "-p", strconv.Itoa(os.Getpid())).Output()
	if err != nil {
		ui.Fatal("Error checking process owner: %v", err)
		os.Exit(1)
	}
	return strings.TrimSpace(string(stdout))
}
