package commands

import (
	"context"
	"fmt"

	"level_tracker_backend/internal/model"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func addValidate(topLevel *cobra.Command, opts *globalOptions) {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog for duplicate level ids and missing fields.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, levels, err := opts.loadCatalog(context.Background())
			if err != nil {
				return opts.HandleError(err)
			}
			problems := model.CheckCatalog(levels)
			if opts.JSON {
				if err := opts.printJSON(problems); err != nil {
					return err
				}
			} else {
				printProblems(levels, problems)
			}
			if n := countErrors(problems); n > 0 {
				return fmt.Errorf("%d problem(s) found", n)
			}
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func printProblems(levels []model.Level, problems []model.Problem) {
	for _, p := range problems {
		if p.Warning {
			_, _ = fmt.Fprintln(color.Output, color.YellowString("warning"), p)
		} else {
			_, _ = fmt.Fprintln(color.Output, color.RedString("error  "), p)
		}
	}
	if countErrors(problems) == 0 {
		_, _ = fmt.Fprintln(color.Output, color.GreenString("ok"), fmt.Sprintf("%d levels", len(levels)))
	}
}

func countErrors(problems []model.Problem) int {
	n := 0
	for _, p := range problems {
		if !p.Warning {
			n++
		}
	}
	return n
}
