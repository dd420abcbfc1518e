package main

import (
	"os"

	"github.com/spf13/cobra"

	"thali/internal/interfaces/cli/migrate"
	"thali/internal/interfaces/cli/seed"
	"thali/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "thali",
		Short: "Thali - meal subscription platform",
		Long:  `Thali is the meal subscription backend: ordering, subscriptions, delivery tracking and the admin catalog, with built-in migration and seeding tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
