package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"displayinfo/internal/digest"
)

func fingerprintCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the fingerprint of the saved display record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := loadSaved(c)
			if err != nil {
				return err
			}
			fp, err := digest.Fingerprint(info)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return err
		},
	}
}
