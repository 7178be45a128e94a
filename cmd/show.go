package cmd

import (
	"bytes"
	"fmt"

	"github.com/clevofan/clevofan/cmd/global"
	"github.com/clevofan/clevofan/internal/configuration"
	"github.com/clevofan/clevofan/internal/ec"
	"github.com/clevofan/clevofan/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var (
	showAll        bool
	showCpuTemp    bool
	showGpuTemp    bool
	showFanDuty    bool
	showFanSpeed   bool
	showHideLabels bool
	showHideUnits  bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current readings of the embedded controller",
	RunE: func(cmd *cobra.Command, args []string) error {
		setupUi()

		configuration.LoadConfig()

		if showAll {
			showCpuTemp = true
			showFanDuty = true
			showFanSpeed = true
		}

		if !showCpuTemp && !showGpuTemp && !showFanDuty && !showFanSpeed {
			ui.Warning("No values selected, you might want to use '--all' or one of the value flags")
			return nil
		}

		reader, err := ec.NewFileReader(configuration.CurrentConfig.ECPath)
		if err != nil {
			return err
		}
		defer reader.Close()

		registers, err := reader.ReadRegisters()
		if err != nil {
			return err
		}

		rows := selectedRows(registers)

		if showHideLabels {
			for _, row := range rows {
				ui.Printfln("%s", row[1])
			}
			return nil
		}

		tab := table.Table{
			Headers: []string{"Value", "Reading"},
			Rows:    rows,
		}
		var buf bytes.Buffer
		tableErr := tab.WriteTable(&buf, &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+b"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		})
		if tableErr != nil {
			return tableErr
		}
		ui.Printf("%s", buf.String())
		return nil
	},
}

func selectedRows(registers ec.Registers) [][]string {
	var rows [][]string
	if showCpuTemp {
		rows = append(rows, []string{"CPU Temperature", formatValue("%.0f", registers.CPUTemp, "°C")})
	}
	if showGpuTemp {
		rows = append(rows, []string{"GPU Temperature", formatValue("%.0f", registers.GPUTemp, "°C")})
	}
	if showFanDuty {
		rows = append(rows, []string{"Fan Duty", formatValue("%.0f", registers.FanDuty, "%")})
	}
	if showFanSpeed {
		rows = append(rows, []string{"Fan Speed", formatValue("%d", registers.FanSpeed, " RPM")})
	}
	return rows
}

func formatValue(format string, value interface{}, unit string) string {
	result := fmt.Sprintf(format, value)
	if !showHideUnits {
		result += unit
	}
	return result
}

func init() {
	showCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all available values")
	showCmd.Flags().BoolVarP(&showCpuTemp, "cpu-temp", "c", false, "Show the CPU core temperature")
	showCmd.Flags().BoolVarP(&showGpuTemp, "gpu-temp", "g", false, "Show the GPU temperature (often unreliable)")
	showCmd.Flags().BoolVarP(&showFanDuty, "fan-duty", "f", false, "Show the current fan duty")
	showCmd.Flags().BoolVarP(&showFanSpeed, "fan-speed", "r", false, "Show the current fan speed in RPM")
	showCmd.Flags().BoolVarP(&showHideLabels, "hide-labels", "l", false, "Print plain values without labels")
	showCmd.Flags().BoolVarP(&showHideUnits, "hide-units", "u", false, "Print values without their units")

	rootCmd.AddCommand(showCmd)
}
