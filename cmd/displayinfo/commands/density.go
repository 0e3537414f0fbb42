package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func densityCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "density <xdpi> <ydpi>",
		Short: "Print the density bucket for a DPI pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return err
			}
			bucket, err := c.wire.ClassifyDensity(cmd.Context(), vals[0], vals[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), bucket)
			return err
		},
	}
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %q is not a number", i+1, a)
		}
		out[i] = v
	}
	return out, nil
}
