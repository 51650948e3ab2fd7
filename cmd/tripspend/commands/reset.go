package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errResetNotConfirmed = errors.New("reset clears the trip profile and every expense; pass --yes to confirm")

func resetCmd(st *appState) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear the trip profile and all expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errResetNotConfirmed
			}
			st.ledger.ResetAll(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Ledger reset.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the reset")
	return cmd
}
