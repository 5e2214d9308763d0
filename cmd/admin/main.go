package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiURL   string
	email    string
	password string
	natsURL  string
)

var rootCmd = &cobra.Command{
	Use:   "catalog-admin",
	Short: "Manage the solar catalog from the terminal",
	Long: `catalog-admin logs in as an admin and opens a terminal UI for
managing series and products.

Credentials fall back to ADMIN_EMAIL and ADMIN_PASSWORD.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "url", envOr("CATALOG_API_URL", "http://localhost:3000"), "catalog API base URL")
	rootCmd.Flags().StringVar(&email, "email", os.Getenv("ADMIN_EMAIL"), "admin email")
	rootCmd.Flags().StringVar(&password, "password", os.Getenv("ADMIN_PASSWORD"), "admin password")

	eventsCmd.Flags().StringVar(&natsURL, "nats", envOr("NATS_URL", "nats://localhost:4222"), "NATS server URL")

	rootCmd.AddCommand(eventsCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
