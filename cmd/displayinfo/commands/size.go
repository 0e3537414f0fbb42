package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"displayinfo/internal/render"
)

func sizeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "size <width> <height> <xdpi> <ydpi>",
		Short: "Print physical size, rounded diagonal and device category",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var px [2]int
			for i := range px {
				v, err := strconv.Atoi(args[i])
				if err != nil {
					return fmt.Errorf("argument %d: %q is not an integer", i+1, args[i])
				}
				px[i] = v
			}
			dpi, err := parseFloats(args[2:])
			if err != nil {
				return err
			}

			sc, err := c.wire.Size.ClassifySize(px[0], px[1], dpi[0], dpi[1])
			if err != nil {
				return err
			}
			return render.SizeClass(cmd.OutOrStdout(), c.format, sc)
		},
	}
}
