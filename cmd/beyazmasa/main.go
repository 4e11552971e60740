package main

import (
	"os"

	"github.com/spf13/cobra"

	"beyazmasa/internal/interfaces/cli/migrate"
	"beyazmasa/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "beyazmasa",
		Short: "Beyaz Masa - municipal citizen request management",
		Long:  `Beyaz Masa is the backend for a municipal citizen request desk, with a built-in HTTP server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
