package cmd

import (
	"fmt"
	"strconv"

	"github.com/clevofan/clevofan/internal/ec"
	"github.com/clevofan/clevofan/internal/ui"
	"github.com/spf13/cobra"
)

// Duties below this do not move enough air to cool the device under
// sustained load.
const lowDutyWarningThreshold = 38.0

var setCmd = &cobra.Command{
	Use:   "set <duty>",
	Short: "Set the fan duty to a fixed value",
	Long: `Sets the fan duty to the given value in percent [0..100] once.
The embedded controller keeps the value until something else changes it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setupUi()

		duty, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid duty value: %s", args[0])
		}
		if duty < 0 || duty > 100 {
			return fmt.Errorf("duty must be in [0..100], got: %.1f", duty)
		}

		if duty < lowDutyWarningThreshold {
			ui.Warning("Duties below %.0f%% barely move any air, the device may overheat under load", lowDutyWarningThreshold)
		}

		writer, err := ec.NewPortWriter()
		if err != nil {
			return err
		}
		defer writer.Close()

		if err := writer.WriteDuty(duty); err != nil {
			return err
		}
		ui.Printfln("Fan duty set to %.1f%%", duty)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
