package cmd

import (
	"github.com/clevofan/clevofan/internal/configuration"
	"github.com/clevofan/clevofan/internal/curves"
	"github.com/clevofan/clevofan/internal/ui"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Print a graph of the configured duty curve",
	RunE: func(cmd *cobra.Command, args []string) error {
		setupUi()

		configuration.LoadConfig()
		if err := configuration.Validate(); err != nil {
			return err
		}

		curve, err := curves.NewDutyCurve(configuration.CurrentConfig.Curve)
		if err != nil {
			return err
		}

		values := make([]float64, 101)
		for temp := 0; temp <= 100; temp++ {
			values[temp] = curve.Evaluate(float64(temp))
		}

		graph := asciigraph.Plot(
			values,
			asciigraph.Height(15),
			asciigraph.Width(100),
			asciigraph.Caption("Duty % / Temperature °C"),
		)
		ui.Printfln("%s", graph)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(curveCmd)
}
