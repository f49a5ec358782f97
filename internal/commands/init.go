package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/store"
)

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a fintrack config and database with default categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, configPath(cmd))
		},
	}
}

func runInit(cmd *cobra.Command, path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	cfg := config.Default()
	if err := config.Save(path, cfg); err != nil {
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

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized fintrack: %s, database %s\n", path, cfg.Database.Path)
	return nil
}

// defaultCategories converts config seeds into global category rows.
func defaultCategories(cfg *config.Config) []model.Category {
	categories := make([]model.Category, 0, len(cfg.Categories.Defaults))
	for _, seed := range cfg.Categories.Defaults {
		categories = append(categories, model.Category{
			Name:     seed.Name,
			Keywords: seed.Keywords,
		})
	}
	return categories
}
