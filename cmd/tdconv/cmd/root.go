package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

const (
	colorModeAuto   = "auto"
	colorModeNever  = "never"
	colorModeAlways = "always"
)

var supportedColorModes = []string{
	colorModeAuto,
	colorModeNever,
	colorModeAlways,
}

var longRootCmdDescription = `tdconv computes the full discrete convolution of two sequences and
marks the valid lags, i.e. the output samples computed from the complete
overlap of both inputs.

Every flag, including those of the sub-commands, may also be set from the
environment as TDCONV_<FLAG>, e.g. TDCONV_COLOR=never, TDCONV_SWAP=true or
TDCONV_X=1,2,3. An explicit flag wins over the environment.
`

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "tdconv",
	Short:         "Time-domain convolution with valid-lag reporting.",
	Long:          longRootCmdDescription,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// tracer writes to trace with key 'tdconv'
func tracer() tracing.Trace {
	return tracing.Select("tdconv")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		tracer().Errorf("tdconv: %v", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(NewRunCmd(), NewSweepCmd())

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "turn on debug tracing")
	rootCmd.PersistentFlags().String("color", colorModeAuto, fmt.Sprintf("set the color mode, the possible values can be %v", supportedColorModes))
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(fmt.Sprintf("failed to bind flags: %v", err))
	}
}

// initConfig reads ENV variables and sets up tracing and colors.
func initConfig() {
	viper.SetEnvPrefix("tdconv")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	level := tracing.LevelInfo
	if viper.GetBool("debug") {
		level = tracing.LevelDebug
	}
	tracer().SetTraceLevel(level)

	if err := setColorMode(viper.GetString("color")); err != nil {
		tracer().Errorf("%v, falling back to %q", err, colorModeAuto)
		_ = setColorMode(colorModeAuto)
	}
}

// setColorMode switches fatih/color output on or off globally.
func setColorMode(mode string) error {
	switch mode {
	case colorModeAlways:
		color.NoColor = false
	case colorModeNever:
		color.NoColor = true
	case colorModeAuto:
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	default:
		return fmt.Errorf("unsupported color mode %q, the possible values can be %v", mode, supportedColorModes)
	}

	return nil
}
