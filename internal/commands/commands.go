package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"level_tracker_backend/internal/config"
	"level_tracker_backend/internal/model"
	"level_tracker_backend/internal/source"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// globalOptions are shared by every subcommand.
type globalOptions struct {
	ConfigDir string
	File      string
	JSON      bool
}

func New() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "level-tracker",
		Short:         "Browse, search and moderate a level catalog.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringVar(&opts.ConfigDir, "config", "configs", "Directory holding config.yaml.")
	cmd.PersistentFlags().StringVarP(&opts.File, "file", "f", "", "Read the catalog from this levels.json instead of the configured source.")
	cmd.PersistentFlags().BoolVar(&opts.JSON, "json", false, "Output as JSON.")

	AddCommands(cmd, opts)
	return cmd
}

func AddCommands(topLevel *cobra.Command, opts *globalOptions) {
	addServe(topLevel, opts)
	addSearch(topLevel, opts)
	addValidate(topLevel, opts)
}

func (o *globalOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(o.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if o.File != "" {
		cfg.Source.Type = "file"
		cfg.Source.Path = o.File
	}
	return cfg, nil
}

// loadCatalog reads the catalog once, without the server's cache.
func (o *globalOptions) loadCatalog(ctx context.Context) (*config.Config, []model.Level, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	loader, err := source.New(&cfg.Source)
	if err != nil {
		return nil, nil, err
	}
	levels, err := loader.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	return cfg, levels, nil
}

func (o *globalOptions) printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, string(b))
	return nil
}

// HandleError prints err as JSON when --json is set, otherwise returns it.
func (o *globalOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		_ = o.printJSON(map[string]string{"error": err.Error()})
		return nil
	}
	return err
}
