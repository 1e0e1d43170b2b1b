package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"level_tracker_backend/internal/service"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

func addSearch(topLevel *cobra.Command, opts *globalOptions) {
	var (
		page      int
		moderator bool
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the catalog and print one page of results.",
		Example: `
level-tracker search
level-tracker search "stereo" --page 2
level-tracker search "low quality" --moderator
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, levels, err := opts.loadCatalog(context.Background())
			if err != nil {
				return opts.HandleError(err)
			}
			surface := cfg.Public
			if moderator {
				surface = cfg.Moderator
			}
			view := service.NewView(service.StaticCatalog(levels), service.SurfaceOptionsFrom(surface))
			if len(args) == 1 {
				view.SetQuery(args[0])
			}
			view.GoToPage(page)
			result := view.Current()
			if opts.JSON {
				return opts.printJSON(result)
			}
			printPage(color.Output, result)
			return nil
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page to show.")
	cmd.Flags().BoolVar(&moderator, "moderator", false, "Use the moderator page size and search copy reasons.")

	topLevel.AddCommand(cmd)
}

func printPage(w io.Writer, result service.PageResult) {
	bold := color.New(color.Bold)
	if result.Empty {
		_, _ = fmt.Fprintln(w, "No levels found.")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Name"), bold.Sprint("Creator"), bold.Sprint("Copies"))
	for _, card := range result.Items {
		tbl.AddRow(card.ID, card.Name, card.Creator, copySummary(card))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintf(w, "\n%s levels, page %d of %d\n", result.ResultsText, result.Page, result.TotalPages)
}

func copySummary(card service.LevelCard) string {
	if card.Counts.Total == 0 {
		return color.New(color.Faint).Sprint("none")
	}
	parts := []string{
		color.GreenString("✓%d", card.Counts.Approved),
		color.YellowString("⏳%d", card.Counts.Pending),
		color.RedString("✗%d", card.Counts.Rejected),
	}
	return strings.Join(parts, " ")
}
