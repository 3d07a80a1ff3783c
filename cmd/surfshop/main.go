package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.toml"

func main() {
	// .env необязателен, секреты могут прийти из окружения
	_ = godotenv.Load()

	var configPath string

	rootCmd := &cobra.Command{
		Use:           "surfshop",
		Short:         "Surf shop rentals backend and operator console",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to config.toml")

	rootCmd.AddCommand(
		serveCmd(&configPath),
		watchCmd(&configPath),
		migrateCmd(&configPath),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
