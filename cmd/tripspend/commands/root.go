package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tripspend/internal/backend"
	"tripspend/internal/catalog"
	"tripspend/internal/cli"
	"tripspend/internal/config"
	"tripspend/internal/core"
	applog "tripspend/internal/log"
	"tripspend/internal/services"
)

// appState is what a command needs once the root pre-run has opened the
// ledger.
type appState struct {
	cfg     *config.Config
	logger  *applog.Logger
	ledger  *services.LedgerService
	catalog *catalog.Catalog
	money   *core.Formatter
}

func (s *appState) close() error {
	if s.ledger == nil {
		return nil
	}
	err := s.ledger.Close()
	s.ledger = nil
	return err
}

func Execute() error {
	cli.LoadEnvFile()

	st := &appState{}
	defer st.close()
	return newRootCmd(st).Execute()
}

func newRootCmd(st *appState) *cobra.Command {
	var (
		backendName string
		dbPath      string
		dataDir     string
	)

	root := &cobra.Command{
		Use:          "tripspend",
		Short:        "Personal trip expense ledger",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadAndValidateConfig(func(c *config.Config) {
				if backendName != "" {
					c.DataBackend = backendName
				}
				if dbPath != "" {
					c.SQLiteDBPath = dbPath
				}
				if dataDir != "" {
					c.DataDir = dataDir
				}
			})
			if err != nil {
				return err
			}

			logger := cli.SetupLogger(cfg.LogLevel, cmd.ErrOrStderr())
			ctx := applog.NewContext(cmd.Context(), logger)
			cmd.SetContext(ctx)

			svc, err := cli.OpenLedger(ctx, cfg, logger)
			if err != nil {
				return err
			}

			st.cfg = cfg
			st.logger = logger
			st.ledger = svc
			st.catalog = catalog.NewFromFiles(cfg.DataDir, cfg.Locale)
			st.money = core.NewFormatter(cfg.Locale)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return st.close()
		},
	}

	root.PersistentFlags().StringVar(&backendName, "backend", "",
		fmt.Sprintf("storage backend (%s); overrides LEDGER_BACKEND", strings.Join(backend.GetBackendTypeStrings(), "|")))
	root.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path; overrides LEDGER_SQLITE_PATH")
	root.PersistentFlags().StringVar(&dataDir, "dir", "", "data directory; overrides LEDGER_DATA_DIR")

	root.AddCommand(
		tripCmd(st),
		addCmd(st),
		rmCmd(st),
		listCmd(st),
		summaryCmd(st),
		exportCmd(st),
		resetCmd(st),
		categoriesCmd(st),
	)
	return root
}
