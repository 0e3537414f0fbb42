package commands

import (
	"github.com/spf13/cobra"

	"displayinfo/internal/app"
	"displayinfo/internal/render"
)

// cli holds the state shared by every subcommand of one root command.
type cli struct {
	home      string
	remoteURL string
	output    string

	format render.Format
	wire   *app.Wire
}

// Execute runs the displayinfo CLI against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "displayinfo",
		Short:         "Classify display hardware into density, size and category buckets",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if c.home != "" {
				cfg.Home = c.home
			}
			if c.remoteURL != "" {
				cfg.RemoteURL = c.remoteURL
			}

			f, err := render.ParseFormat(c.output)
			if err != nil {
				return err
			}
			c.format = f

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			c.wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.home, "home", "", "state dir (default $DISPLAYINFO_HOME or ~/.displayinfo)")
	root.PersistentFlags().StringVar(&c.remoteURL, "remote", "", "displayinfod base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().StringVarP(&c.output, "output", "o", "text", "output format: text, json or yaml")

	root.AddCommand(
		buildCmd(c),
		densityCmd(c),
		sizeCmd(c),
		restoreCmd(c),
		fingerprintCmd(c),
	)
	return root
}
