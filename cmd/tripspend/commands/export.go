package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tripspend/internal/export"
	applog "tripspend/internal/log"
)

func exportCmd(st *appState) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all expenses to a CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, ok := st.ledger.ExportRows(export.Header(st.cfg.Locale))
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to export.")
				return nil
			}

			path := output
			if path == "" {
				path = st.cfg.ExportPath
			}
			if err := export.WriteFile(path, rows); err != nil {
				return err
			}

			st.logger.WithComponent(applog.ComponentExport).DebugContext(cmd.Context(), "Expenses exported",
				applog.FieldOperation, applog.OpExport, applog.FieldPath, path, applog.FieldEntryCount, len(rows)-1)
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d expenses to %s\n", len(rows)-1, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default LEDGER_EXPORT_PATH)")
	return cmd
}
