package commands

import (
	"level_tracker_backend/internal/app"

	"github.com/spf13/cobra"
)

func addServe(topLevel *cobra.Command, opts *globalOptions) {
	var readOnly bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server.",
		Example: `
level-tracker serve
level-tracker serve --read-only -f ./levels.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if readOnly {
				cfg.Server.ReadOnly = true
			}
			app.NewApp(cfg).Run()
			return nil
		},
	}
	cmd.Flags().BoolVar(&readOnly, "read-only", false, "Serve only the public surface.")

	topLevel.AddCommand(cmd)
}
