package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/beaconhq/beacon/internal/interfaces/cli/diag"
	"github.com/beaconhq/beacon/internal/interfaces/cli/migrate"
	"github.com/beaconhq/beacon/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "beacon",
		Short: "Beacon - small business marketing backend",
		Long:  `Beacon reconciles captured business data into marketing profiles and publishes them to the CMS.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		diag.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
