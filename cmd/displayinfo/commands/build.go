package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"displayinfo/internal/domain"
	"displayinfo/internal/render"
	"displayinfo/internal/source"
)

func buildCmd(c *cli) *cobra.Command {
	var (
		snap    domain.Snapshot
		from    string
		fromEnv bool
		save    bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Classify a display snapshot",
		Example: `  displayinfo build --width 1080 --height 1920 --xdpi 440 --ydpi 440 --density 2.75
  displayinfo build --from snapshot.yaml -o json
  DISPLAYINFO_SNAPSHOT_WIDTH_PX=1080 ... displayinfo build --env --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := pickSource(cmd, snap, from, fromEnv)
			if err != nil {
				return err
			}

			info, err := c.wire.BuildFrom(cmd.Context(), src)
			if err != nil {
				return err
			}
			if save {
				if err := c.wire.State.SaveDisplayInfo(info); err != nil {
					return fmt.Errorf("save: %w", err)
				}
			}
			return render.DisplayInfo(cmd.OutOrStdout(), c.format, info)
		},
	}

	cmd.Flags().IntVar(&snap.WidthPixels, "width", 0, "width in pixels")
	cmd.Flags().IntVar(&snap.HeightPixels, "height", 0, "height in pixels")
	cmd.Flags().Float64Var(&snap.XDpi, "xdpi", 0, "horizontal dots per inch")
	cmd.Flags().Float64Var(&snap.YDpi, "ydpi", 0, "vertical dots per inch")
	cmd.Flags().Float64Var(&snap.Density, "density", 0, "pixels per dp")
	cmd.Flags().StringVar(&from, "from", "", "read the snapshot from a .json, .yaml or .yml file")
	cmd.Flags().BoolVar(&fromEnv, "env", false, "read the snapshot from DISPLAYINFO_SNAPSHOT_* variables")
	cmd.Flags().BoolVar(&save, "save", false, "persist the result to the state dir")
	cmd.MarkFlagsMutuallyExclusive("from", "env")
	return cmd
}

var measurementFlags = []string{"width", "height", "xdpi", "ydpi", "density"}

func pickSource(cmd *cobra.Command, snap domain.Snapshot, from string, fromEnv bool) (domain.SnapshotSource, error) {
	changed := 0
	for _, name := range measurementFlags {
		if cmd.Flags().Changed(name) {
			changed++
		}
	}

	switch {
	case from != "" || fromEnv:
		if changed > 0 {
			return nil, errors.New("measurement flags cannot be combined with --from or --env")
		}
		if from != "" {
			return source.File{Path: from}, nil
		}
		return source.Env{}, nil
	case changed == len(measurementFlags):
		return source.Static(snap), nil
	default:
		return nil, errors.New("provide --width, --height, --xdpi, --ydpi and --density, or --from, or --env")
	}
}
