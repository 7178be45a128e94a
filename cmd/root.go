package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/clevofan/clevofan/cmd/global"
	"github.com/clevofan/clevofan/internal"
	"github.com/clevofan/clevofan/internal/configuration"
	"github.com/clevofan/clevofan/internal/ec"
	"github.com/clevofan/clevofan/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clevofan",
	Short: "A daemon to control the fan of Clevo devices.",
	Long: `clevofan periodically reads the core temperature from the kernel's
interface to the embedded controller (EC) of Clevo devices and updates
the fan duty based on it, using a configurable curve.

Once the control loop is running it won't fail. When the temperature
cannot be read, an infinitely high temperature is assumed to stay on
the safe side. When the fan duty cannot be set, the value is applied
again with the next queried temperature.`,
	Run: func(cmd *cobra.Command, args []string) {
		setupUi()
		printHeader()

		configuration.LoadConfig()
		if err := configuration.Validate(); err != nil {
			ui.Fatal("Configuration error: %s", err.Error())
		}

		internal.RunDaemon()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")

	rootCmd.PersistentFlags().String("ec-path", ec.DefaultPath, "Path to the kernel's EC register interface")

	rootCmd.PersistentFlags().DurationP("interval", "i", 500*time.Millisecond, "Interval in which to poll the temperature and update the fan duty")
	rootCmd.PersistentFlags().Int("moving-average", 0, "Apply a moving average of the given window size to the temperature")
	rootCmd.PersistentFlags().Int("moving-median", 0, "Apply a moving median of the given window size to the temperature")

	rootCmd.PersistentFlags().Bool("linear", false, "Determine fan duty as a linear function of the core temperature")
	rootCmd.PersistentFlags().Float64("linear-slope", 1.0, "Slope of the linear duty function")
	rootCmd.PersistentFlags().Float64("linear-offset", 0.0, "Y-axis offset of the linear duty function")
	rootCmd.PersistentFlags().Bool("exp", false, "Determine fan duty as an exponential function of the core temperature")
	rootCmd.PersistentFlags().String("exp-base", "e", "Base of the exponential duty function, one of: e | 2")
	rootCmd.PersistentFlags().Float64("exp-factor", 1.0, "Factor of the exponential duty function")
	rootCmd.PersistentFlags().Bool("square", false, "Determine fan duty as a quadratic function of the core temperature")
	rootCmd.PersistentFlags().Float64("square-factor", 0.01, "Factor of the quadratic duty function")

	rootCmd.PersistentFlags().Float64("min-fan-change", 0, "Minimum duty change (in percent) that is applied without suppression")
	rootCmd.PersistentFlags().Int("max-unchanged-cycles", 0, "Maximum number of cycles a small duty change may be suppressed")

	rootCmd.PersistentFlags().Bool("monitor", false, "Show a live view of temperature and fan duty")

	bindFlags(
		"ec-path",
		"interval",
		"moving-average",
		"moving-median",
		"linear",
		"linear-slope",
		"linear-offset",
		"exp",
		"exp-base",
		"exp-factor",
		"square",
		"square-factor",
		"min-fan-change",
		"max-unchanged-cycles",
		"monitor",
	)
}

func bindFlags(names ...string) {
	for _, name := range names {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("clevo", pterm.NewStyle(pterm.FgLightBlue)),
		pterm.NewLettersFromStringWithStyle("fan", pterm.NewStyle(pterm.FgWhite)),
	).Render()
	if err != nil {
		fmt.Println("clevofan")
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		configuration.InitConfig()
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
