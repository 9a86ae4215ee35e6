package cmd

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tdconv/tdc"
)

func TestRunCmd_Reference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tdconv")
	defer teardown()
	plainOutput(t)

	for _, args := range [][]string{{}, {"--int"}} {
		var out bytes.Buffer
		c := NewRunCmd()
		c.SetOut(&out)
		c.SetArgs(args)
		require.NoError(t, c.Execute())
		assert.Equal(t, "X:4 Y:6 Z:9 --> [24 30 -39 47 15 58 61 -7 45]\nvalid lags [3,6)\n", out.String(), "args %v", args)
	}
}

func TestRunCmd_Swap(t *testing.T) {
	plainOutput(t)

	var out bytes.Buffer
	c := NewRunCmd()
	c.SetOut(&out)
	c.SetArgs([]string{"--x", "1", "--y", "5,-2", "--swap"})
	require.NoError(t, c.Execute())
	assert.Equal(t,
		"X:1 Y:2 Z:2 --> [5 -2]\nvalid lags [0,2)\n"+
			"Y:2 X:1 Z:2 --> [5 -2]\nvalid lags [0,2)\n",
		out.String())
}

func TestRunCmd_Environment(t *testing.T) {
	plainOutput(t)
	t.Setenv("TDCONV_X", "1")
	t.Setenv("TDCONV_Y", "5,-2")
	t.Setenv("TDCONV_SWAP", "true")

	var out bytes.Buffer
	c := NewRunCmd()
	c.SetOut(&out)
	c.SetArgs([]string{})
	require.NoError(t, c.Execute())
	assert.Equal(t,
		"X:1 Y:2 Z:2 --> [5 -2]\nvalid lags [0,2)\n"+
			"Y:2 X:1 Z:2 --> [5 -2]\nvalid lags [0,2)\n",
		out.String())

	// an explicit flag overrides the environment
	out.Reset()
	c = NewRunCmd()
	c.SetOut(&out)
	c.SetArgs([]string{"--y", "3"})
	require.NoError(t, c.Execute())
	assert.Equal(t,
		"X:1 Y:1 Z:1 --> [3]\nvalid lags [0,1)\n"+
			"Y:1 X:1 Z:1 --> [3]\nvalid lags [0,1)\n",
		out.String())

	t.Setenv("TDCONV_X", "1,oops")
	c = NewRunCmd()
	c.SetOut(&bytes.Buffer{})
	c.SetArgs([]string{})
	assert.Error(t, c.Execute(), "malformed environment sequence is rejected")
}

func TestSweepCmd_Environment(t *testing.T) {
	plainOutput(t)
	t.Setenv("TDCONV_X", "1,1")
	t.Setenv("TDCONV_Y", "1")
	t.Setenv("TDCONV_VERBOSE", "true")

	var out bytes.Buffer
	c := NewSweepCmd()
	c.SetOut(&out)
	c.SetArgs([]string{})
	require.NoError(t, c.Execute())
	assert.Contains(t, out.String(), "x in [0,2), y in [0,1):")
	assert.Contains(t, out.String(), "18 cases, 0 mismatches")
}

func TestFloatsFromConfig_FlagDefault(t *testing.T) {
	c := NewRunCmd()
	require.NoError(t, bindFlags(c))
	x, err := floatsFromConfig(c, "x")
	require.NoError(t, err)
	assert.Equal(t, defaultX, x)
}

func TestRunCmd_Errors(t *testing.T) {
	c := NewRunCmd()
	c.SetOut(&bytes.Buffer{})
	c.SetArgs([]string{"--x", "1.5", "--int"})
	assert.Error(t, c.Execute(), "fractions are rejected in integer mode")

	err := runConvolution(&bytes.Buffer{}, []float64{}, []float64{1}, false)
	assert.ErrorIs(t, err, tdc.ErrEmptyInput)
}

func TestSweep_NoMismatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tdconv")
	defer teardown()

	var out bytes.Buffer
	report, err := sweep(&out, defaultX, defaultY, false)
	require.NoError(t, err)
	// 10 × 21 sub-range pairs, two argument orders, three cursor layouts.
	assert.Equal(t, 10*21*2*3, report.Cases)
	assert.Zero(t, report.Mismatches)
	assert.Empty(t, out.String(), "quiet sweep prints nothing itself")
}

func TestSweepCmd_Verbose(t *testing.T) {
	plainOutput(t)

	var out bytes.Buffer
	c := NewSweepCmd()
	c.SetOut(&out)
	c.SetArgs([]string{"--x", "1,1", "--y", "1", "-v"})
	require.NoError(t, c.Execute())
	assert.Contains(t, out.String(), "x in [0,2), y in [0,1):")
	assert.Contains(t, out.String(), "[1 1]")
	// x has 3 sub-ranges, y has 1: 3 pairs × 2 orders × 3 layouts.
	assert.Contains(t, out.String(), "18 cases, 0 mismatches")
}

func TestSetColorMode(t *testing.T) {
	require.NoError(t, setColorMode(colorModeNever))
	assert.True(t, color.NoColor)
	require.NoError(t, setColorMode(colorModeAlways))
	assert.False(t, color.NoColor)
	assert.Error(t, setColorMode("sometimes"))
	color.NoColor = true
}

func TestCloseTo(t *testing.T) {
	assert.True(t, closeTo([]float64{1, 2}, []float64{1, 2 + 1e-12}))
	assert.False(t, closeTo([]float64{1, 2}, []float64{1, 2.1}))
	assert.False(t, closeTo([]float64{1}, []float64{1, 2}))
}

// plainOutput disables colors for the command under test; cobra runs
// initConfig on every Execute, so the setting goes through viper.
func plainOutput(t *testing.T) {
	t.Helper()
	viper.Set("color", colorModeNever)
	color.NoColor = true
}
