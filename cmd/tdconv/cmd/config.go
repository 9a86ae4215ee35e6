package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// bindFlags binds the command's own flags to viper, so each of them may
// also come from TDCONV_<FLAG>. Sub-commands share flag names, which is
// why binding happens when a command runs rather than at init time.
func bindFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.LocalNonPersistentFlags()); err != nil {
		return fmt.Errorf("failed to bind flags of %q: %w", cmd.Name(), err)
	}

	return nil
}

// floatsFromConfig reads a sequence for key. An explicit flag is taken at
// full precision from the flag set; otherwise viper supplies the value,
// "4,7" from the environment or "[4.000000,7.000000]" from the flag default.
func floatsFromConfig(cmd *cobra.Command, key string) ([]float64, error) {
	if f := cmd.Flags().Lookup(key); f != nil && f.Changed {
		return cmd.Flags().GetFloat64Slice(key)
	}
	raw := strings.TrimSpace(viper.GetString(key))
	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "["), "]")
	if strings.TrimSpace(raw) == "" {
		return []float64{}, nil
	}
	fields := strings.Split(raw, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("--%s: invalid value %q at position %d", key, f, i)
		}
		out[i] = v
	}

	return out, nil
}
