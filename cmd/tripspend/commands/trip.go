package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	applog "tripspend/internal/log"
)

func tripCmd(st *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trip",
		Short: "Show or edit the trip profile",
	}
	cmd.AddCommand(tripShowCmd(st), tripSetCmd(st))
	return cmd
}

func tripShowCmd(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the trip profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := st.ledger.Profile()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Traveler: %s\n", orDash(p.Traveler))
			fmt.Fprintf(out, "Trip:     %s\n", orDash(p.Name))
			fmt.Fprintf(out, "Dates:    %s → %s\n", orDash(p.Start), orDash(p.End))
			if budget, ok := p.BudgetAmount(); ok {
				fmt.Fprintf(out, "Budget:   %s\n", st.money.Format(budget, p.Currency))
			} else {
				fmt.Fprintf(out, "Budget:   —\n")
			}
			fmt.Fprintf(out, "Currency: %s\n", p.Currency)
			return nil
		},
	}
}

func tripSetCmd(st *appState) *cobra.Command {
	var traveler, name, start, end, budget, currency string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace the trip profile; omitted flags keep their current value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := st.ledger.Profile()
			flags := cmd.Flags()
			if flags.Changed("traveler") {
				p.Traveler = strings.TrimSpace(traveler)
			}
			if flags.Changed("name") {
				p.Name = strings.TrimSpace(name)
			}
			if flags.Changed("start") {
				p.Start = start
			}
			if flags.Changed("end") {
				p.End = end
			}
			if flags.Changed("budget") {
				p.Budget = strings.TrimSpace(budget)
			}
			if flags.Changed("currency") {
				p.Currency = strings.ToUpper(strings.TrimSpace(currency))
			}
			if err := p.Validate(); err != nil {
				st.logger.DebugContext(cmd.Context(), "Trip profile rejected",
					applog.NewFields().
						WithOperation(applog.OpValidate).
						WithErrorType(applog.ErrorTypeValidation).
						WithError(err).
						ToSlice()...)
				return err
			}

			st.ledger.UpdateProfile(cmd.Context(), p)
			fmt.Fprintf(cmd.OutOrStdout(), "Trip profile saved: %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&traveler, "traveler", "", "traveler name")
	cmd.Flags().StringVar(&name, "name", "", "trip name")
	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&budget, "budget", "", "budget in the trip currency; empty clears it")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 currency code")
	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
