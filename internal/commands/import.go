package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/importer"
	"github.com/fintrack-dev/fintrack/internal/logger"
	"github.com/fintrack-dev/fintrack/internal/store"
)

func newImportCommand() *cobra.Command {
	var accountID string
	var userID string

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import a bank CSV export into an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath(cmd))
			if err != nil {
				return err
			}

			st, err := store.Open(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer st.Close()

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening CSV: %w", err)
			}
			defer file.Close()

			log := logger.New()
			imp := importer.NewService(st.Accounts, st.Categories, st.Transactions, st.Jobs, log)

			result, err := imp.ImportCSV(cmd.Context(), userID, accountID, filepath.Base(args[0]), file)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d, skipped %d, errors %d (job %s)\n",
				result.Imported, result.Skipped, result.Errors, result.JobID)
			return nil
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "account id (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&userID, "user", "local", "user id owning the account")

	return cmd
}
