package cmd

import (
	"container/list"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tdconv/cursor"
	"github.com/katalvlaran/tdconv/tdc"
)

type sweepOpts struct {
	x       []float64
	y       []float64
	verbose bool
}

var exampleForSweepCmd = `
sweep the built-in reference sequences:
  tdconv sweep

sweep custom sequences and print every case:
  tdconv sweep --x 1,2,3 --y 4,5 --verbose
`

// sweepTolerance bounds the difference between kernel and reference
// caused by a different summation order.
const sweepTolerance = 1e-9

// sweepReport summarizes one sweep.
type sweepReport struct {
	Cases      int // sub-range pairs × argument orders × cursor layouts
	Mismatches int
}

// sweepOptsFromConfig collects the sweep options from flags and environment.
func sweepOptsFromConfig(cmd *cobra.Command) (opts sweepOpts, err error) {
	if opts.x, err = floatsFromConfig(cmd, "x"); err != nil {
		return opts, err
	}
	if opts.y, err = floatsFromConfig(cmd, "y"); err != nil {
		return opts, err
	}
	opts.verbose = viper.GetBool("verbose")

	return opts, nil
}

// NewSweepCmd returns the `tdconv sweep` command.
func NewSweepCmd() *cobra.Command {
	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Check the kernel against the reference definition on every sub-range pair",
		Long: `sweep enumerates every non-empty sub-range of the two sequences, convolves
each pair in both argument orders over slice, list and forward-only chain
cursors, and compares the result with the direct double-loop definition.`,
		Example: exampleForSweepCmd,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(cmd); err != nil {
				return err
			}
			opts, err := sweepOptsFromConfig(cmd)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			report, err := sweep(w, opts.x, opts.y, opts.verbose)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%d cases, %d mismatches\n", report.Cases, report.Mismatches)
			if report.Mismatches > 0 {
				return fmt.Errorf("sweep found %d mismatches", report.Mismatches)
			}

			return nil
		},
	}

	sweepCmd.Flags().Float64Slice("x", defaultX, "first reference sequence")
	sweepCmd.Flags().Float64Slice("y", defaultY, "second reference sequence")
	sweepCmd.Flags().BoolP("verbose", "v", false, "print every case")

	return sweepCmd
}

// sweep runs every non-empty sub-range pair of x and y through the kernel
// in both argument orders.
func sweep(w io.Writer, x, y []float64, verbose bool) (sweepReport, error) {
	var report sweepReport
	if len(x) == 0 || len(y) == 0 {
		return report, fmt.Errorf("sweep: %w", tdc.ErrEmptyInput)
	}
	for xb := 0; xb < len(x); xb++ {
		for xe := xb + 1; xe <= len(x); xe++ {
			for yb := 0; yb < len(y); yb++ {
				for ye := yb + 1; ye <= len(y); ye++ {
					xs, ys := x[xb:xe], y[yb:ye]
					if verbose {
						fmt.Fprintf(w, "x in [%d,%d), y in [%d,%d):\n", xb, xe, yb, ye)
					}
					for _, order := range [2][2][]float64{{xs, ys}, {ys, xs}} {
						n, bad, err := sweepCase(w, order[0], order[1], verbose)
						if err != nil {
							return report, err
						}
						report.Cases += n
						report.Mismatches += bad
					}
				}
			}
		}
	}
	tracer().Infof("sweep: %d cases, %d mismatches", report.Cases, report.Mismatches)

	return report, nil
}

// sweepCase convolves a and b over three cursor layouts and compares each
// output with tdc.Direct. It returns the number of layouts run and the
// number of mismatching ones.
func sweepCase(w io.Writer, a, b []float64, verbose bool) (cases, mismatches int, err error) {
	want := make([]float64, tdc.OutputLen(len(a), len(b)))
	if err = tdc.Direct(a, b, want); err != nil {
		return 0, 0, err
	}
	span := tdc.ValidSpan(len(a), len(b))

	layouts := []struct {
		name string
		conv func() ([]float64, tdc.Span, error)
	}{
		{"slice/slice/slice", func() ([]float64, tdc.Span, error) {
			z := make([]float64, len(want))
			s, err := tdc.Slices(a, b, z)
			return z, s, err
		}},
		{"list/chain/chain", func() ([]float64, tdc.Span, error) {
			return convolveLinked(a, b, len(want))
		}},
		{"list/slice/list", func() ([]float64, tdc.Span, error) {
			return convolveMixed(a, b, len(want))
		}},
	}

	for _, l := range layouts {
		got, gotSpan, err := l.conv()
		if err != nil {
			return cases, mismatches, fmt.Errorf("%s: %w", l.name, err)
		}
		cases++
		if verbose {
			fmt.Fprintf(w, "  X:%d Y:%d Z:%d %-18s--> ", len(a), len(b), len(got), l.name)
			printSequence(w, got, gotSpan)
		}
		if !closeTo(want, got) || gotSpan != span {
			mismatches++
			tracer().Errorf("sweep: %s mismatch for %v * %v: got %v %v, want %v %v",
				l.name, a, b, got, gotSpan, want, span)
		}
	}

	return cases, mismatches, nil
}

// convolveLinked uses a bidirectional list for the first input and
// forward-only chains for the second input and the output.
func convolveLinked(a, b []float64, n int) ([]float64, tdc.Span, error) {
	x0, xX := cursor.ListBounds[float64](cursor.NewList(a...))
	y0, yY := cursor.NewChain(b...).Bounds()
	zc := cursor.NewChain(make([]float64, n)...)
	z0, zZ := zc.Bounds()

	lo, hi, err := tdc.Convolve[float64, float64, float64](x0, xX, y0, yY, z0, zZ)
	if err != nil {
		return nil, tdc.Span{}, err
	}

	return zc.Values(), tdc.Span{From: z0.Distance(lo), To: z0.Distance(hi)}, nil
}

// convolveMixed uses a list for the first input and the output and a
// slice for the second input.
func convolveMixed(a, b []float64, n int) ([]float64, tdc.Span, error) {
	x0, xX := cursor.ListBounds[float64](cursor.NewList(a...))
	y0, yY := cursor.Bounds(b)
	zl := list.New()
	for i := 0; i < n; i++ {
		zl.PushBack(math.NaN())
	}
	z0, zZ := cursor.ListBounds[float64](zl)

	lo, hi, err := tdc.Convolve[float64, float64, float64](x0, xX, y0, yY, z0, zZ)
	if err != nil {
		return nil, tdc.Span{}, err
	}
	out := make([]float64, 0, n)
	for e := zl.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(float64))
	}

	return out, tdc.Span{From: z0.Distance(lo), To: z0.Distance(hi)}, nil
}

func closeTo(want, got []float64) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if math.Abs(want[i]-got[i]) > sweepTolerance*math.Max(1, math.Abs(want[i])) {
			return false
		}
	}

	return true
}
