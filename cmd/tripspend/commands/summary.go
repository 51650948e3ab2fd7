package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"tripspend/internal/core"
)

func summaryCmd(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals per currency and the top categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			view := st.ledger.Aggregate()

			fmt.Fprintf(out, "Days:    %d\n", view.DateCount)
			fmt.Fprintf(out, "Entries: %d\n", view.EntryCount)
			fmt.Fprintf(out, "Total:   %s\n", totalsLine(st, view))

			tiles := core.Tiles(st.ledger.Profile(), view)
			if len(tiles) == 0 {
				fmt.Fprintln(out, "\nNo expenses yet. Add the first one to see totals.")
				return nil
			}
			for _, tile := range tiles {
				writeTile(out, st, tile)
			}
			return nil
		},
	}
}

func totalsLine(st *appState, view core.AggregateView) string {
	if len(view.Currencies) == 0 {
		return "—"
	}
	parts := make([]string, 0, len(view.Currencies))
	for _, code := range view.Currencies {
		parts = append(parts, st.money.Format(view.TotalsByCurrency[code], code))
	}
	return strings.Join(parts, " · ")
}

func writeTile(out io.Writer, st *appState, tile core.CurrencyTile) {
	title := "Total " + tile.Currency
	if tile.HasBudget {
		title = "Total (" + tile.Currency + ")"
	}
	fmt.Fprintf(out, "\n%s\n  %s\n", title, st.money.Format(tile.Total, tile.Currency))
	if tile.HasBudget {
		fmt.Fprintf(out, "  Remaining: %s\n", st.money.Format(tile.Remaining, tile.Currency))
	}
	if len(tile.TopCategories) > 0 {
		parts := make([]string, 0, len(tile.TopCategories))
		for _, c := range tile.TopCategories {
			parts = append(parts, c.Name+": "+st.money.Format(c.Amount, tile.Currency))
		}
		fmt.Fprintf(out, "  %s\n", strings.Join(parts, " · "))
	}
}
