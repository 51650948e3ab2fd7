package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"tripspend/internal/core"
)

func addCmd(st *appState) *cobra.Command {
	var date, amount, currency, category, payment, note string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := core.ParseAmount(amount)
			if err != nil {
				return &core.ValidationError{Field: "amount", Err: err}
			}

			in := core.ExpenseInput{
				Date:     date,
				Amount:   value,
				Currency: strings.ToUpper(strings.TrimSpace(currency)),
				Category: strings.TrimSpace(category),
				Payment:  strings.TrimSpace(payment),
				Note:     note,
			}
			if in.Date == "" {
				in.Date = time.Now().Format("2006-01-02")
			}
			if in.Currency == "" {
				in.Currency = st.ledger.Profile().Currency
			}
			if in.Category == "" {
				if cats := st.catalog.Categories(); len(cats) > 0 {
					in.Category = cats[0]
				}
			}
			if in.Payment == "" {
				in.Payment = st.catalog.DefaultPayment()
			}

			r, err := st.ledger.AddExpense(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s on %s (%s)\n",
				st.money.Format(r.Amount, r.Currency), r.Category, r.Date, r.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "expense date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "amount, e.g. 12.50 or 12,50")
	cmd.Flags().StringVarP(&currency, "currency", "c", "", "ISO 4217 code (default trip currency)")
	cmd.Flags().StringVar(&category, "category", "", "category (default first suggestion)")
	cmd.Flags().StringVar(&payment, "payment", "", "payment method (default first suggestion)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "free-form note")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func rmCmd(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>...",
		Short: "Remove expenses by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, id := range args {
				if st.ledger.RemoveExpense(cmd.Context(), id) {
					fmt.Fprintf(out, "Removed %s\n", id)
				} else {
					fmt.Fprintf(out, "No expense with id %s\n", id)
				}
			}
			return nil
		},
	}
}

func listCmd(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List expenses, newest date first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records := st.ledger.Expenses()
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No expenses yet. Add one to start the trip ledger.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tAMOUNT\tCURRENCY\tCATEGORY\tNOTE")
			for _, r := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s • %s\n",
					r.ID, r.Date, st.money.Format(r.Amount, r.Currency), r.Currency, r.Category, orDash(r.Note), r.Payment)
			}
			return w.Flush()
		},
	}
}

func categoriesCmd(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show category and payment suggestions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Categories: %s\n", strings.Join(st.catalog.Categories(), ", "))
			fmt.Fprintf(out, "Payments:   %s\n", strings.Join(st.catalog.Payments(), ", "))
			return nil
		},
	}
}
