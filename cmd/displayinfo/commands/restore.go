package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"displayinfo/internal/domain"
	"displayinfo/internal/render"
)

var errNothingSaved = errors.New("no saved display record (run build --save first)")

func restoreCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Render the saved display record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := loadSaved(c)
			if err != nil {
				return err
			}
			return render.DisplayInfo(cmd.OutOrStdout(), c.format, info)
		},
	}
}

func loadSaved(c *cli) (domain.DisplayInfo, error) {
	info, ok, err := c.wire.State.LoadDisplayInfo()
	if err != nil {
		return domain.DisplayInfo{}, err
	}
	if !ok {
		return domain.DisplayInfo{}, errNothingSaved
	}
	return info, nil
}
