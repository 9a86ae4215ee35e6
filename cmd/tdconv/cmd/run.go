package cmd

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tdconv/tdc"
)

type runOpts struct {
	x       []float64
	y       []float64
	integer bool
	swap    bool
}

// Reference sequences used when --x or --y is not given.
var (
	defaultX = []float64{4, 7, -3, 5}
	defaultY = []float64{6, -3, 0, 2, 4, 9}
)

var exampleForRunCmd = `
convolve the built-in reference sequences:
  tdconv run

convolve in integer arithmetic and show both argument orders:
  tdconv run --x 1,2,3 --y 1,1 --int --swap
`

// validColor highlights lags computed from the complete overlap.
var validColor = color.New(color.FgGreen, color.Bold)

// runOptsFromConfig collects the run options from flags and environment.
func runOptsFromConfig(cmd *cobra.Command) (opts runOpts, err error) {
	if opts.x, err = floatsFromConfig(cmd, "x"); err != nil {
		return opts, err
	}
	if opts.y, err = floatsFromConfig(cmd, "y"); err != nil {
		return opts, err
	}
	opts.integer = viper.GetBool("int")
	opts.swap = viper.GetBool("swap")

	return opts, nil
}

// NewRunCmd returns the `tdconv run` command.
func NewRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Convolve two sequences and mark the valid lags",
		Example: exampleForRunCmd,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(cmd); err != nil {
				return err
			}
			opts, err := runOptsFromConfig(cmd)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if !opts.integer {
				return runConvolution(w, opts.x, opts.y, opts.swap)
			}
			xi, err := toIntegers(opts.x)
			if err != nil {
				return fmt.Errorf("--x: %w", err)
			}
			yi, err := toIntegers(opts.y)
			if err != nil {
				return fmt.Errorf("--y: %w", err)
			}

			return runConvolution(w, xi, yi, opts.swap)
		},
	}

	runCmd.Flags().Float64Slice("x", defaultX, "first input sequence")
	runCmd.Flags().Float64Slice("y", defaultY, "second input sequence")
	runCmd.Flags().Bool("int", false, "accumulate in int64 instead of float64")
	runCmd.Flags().Bool("swap", false, "also convolve with the arguments swapped")

	return runCmd
}

// runConvolution convolves x and y, prints the result and, with swap,
// the result of the swapped call.
func runConvolution[E tdc.Number](w io.Writer, x, y []E, swap bool) error {
	z, span, err := tdc.Full(x, y)
	if err != nil {
		return err
	}
	tracer().Debugf("run: X=%d Y=%d valid=[%d,%d)", len(x), len(y), span.From, span.To)
	fmt.Fprintf(w, "X:%d Y:%d Z:%d --> ", len(x), len(y), len(z))
	printSequence(w, z, span)
	fmt.Fprintf(w, "valid lags [%d,%d)\n", span.From, span.To)
	if !swap {
		return nil
	}

	zs, spanS, err := tdc.Full(y, x)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Y:%d X:%d Z:%d --> ", len(y), len(x), len(zs))
	printSequence(w, zs, spanS)
	fmt.Fprintf(w, "valid lags [%d,%d)\n", spanS.From, spanS.To)

	return nil
}

// printSequence writes z as a bracketed list, valid lags highlighted.
func printSequence[E tdc.Number](w io.Writer, z []E, span tdc.Span) {
	parts := make([]string, len(z))
	for i, v := range z {
		s := fmt.Sprint(v)
		if span.Contains(i) {
			s = validColor.Sprint(s)
		}
		parts[i] = s
	}
	fmt.Fprintf(w, "[%s]\n", strings.Join(parts, " "))
}

// toIntegers converts flag values to int64, rejecting fractions.
func toIntegers(vals []float64) ([]int64, error) {
	out := make([]int64, len(vals))
	for i, v := range vals {
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("value %v at position %d is not an integer", v, i)
		}
		out[i] = int64(v)
	}

	return out, nil
}
