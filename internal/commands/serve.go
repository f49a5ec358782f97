package commands

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/importer"
	"github.com/fintrack-dev/fintrack/internal/logger"
	"github.com/fintrack-dev/fintrack/internal/server"
	"github.com/fintrack-dev/fintrack/internal/store"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the fintrack HTTP API",
		Args:  cobra.NoArgs,
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

			if err := st.Categories.SeedDefaults(cmd.Context(), defaultCategories(cfg)); err != nil {
				return fmt.Errorf("seeding categories: %w", err)
			}

			log := logger.New()
			imp := importer.NewService(st.Accounts, st.Categories, st.Transactions, st.Jobs, log)
			srv := server.New(st, imp, log)

			log.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
			return http.ListenAndServe(cfg.Server.Addr, srv.Handler())
		},
	}
}
