// Package seed implements the CLI command that loads seed data.
package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"thali/internal/infrastructure/config"
	"thali/internal/infrastructure/database"
	"thali/internal/infrastructure/migration"
	"thali/internal/infrastructure/persistence/seeds"
	"thali/internal/shared/biztime"
	"thali/internal/shared/logger"
)

var (
	env  string
	file string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load seed data",
		Long:  `Load menu items, addons, settings and users from a YAML seed file. Existing rows are left untouched.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&file, "file", "f", "configs/seeds.yaml", "Path to the YAML seed file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	biztime.MustInit(cfg.Business.Timezone)

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	migrator := migration.NewManager(env)
	if err := migrator.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	seedFile, err := seeds.Load(file)
	if err != nil {
		return err
	}
	if err := seeds.Apply(database.Get(), seedFile, log); err != nil {
		return err
	}

	log.Infow("seeding completed", "file", file)
	return nil
}
