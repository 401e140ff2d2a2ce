package main

import (
	"os"

	"github.com/spf13/cobra"

	"tripwise/internal/interfaces/cli/migrate"
	"tripwise/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tripwise",
		Short: "Tripwise - collaborative travel planning service",
		Long:  `Tripwise serves the travel plan API: plans, day places, schedules, group assignments and the lookup catalogs behind them.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
