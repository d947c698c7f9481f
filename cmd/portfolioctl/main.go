// Package main provides portfolioctl, an admin CLI for the portfolio API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "portfolioctl",
	Short: "Manage portfolio content over the REST API",
}

func main() {
	_ = godotenv.Load()

	defaultServer := os.Getenv("PORTFOLIO_API_URL")
	if defaultServer == "" {
		defaultServer = "http://localhost:3002"
	}
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer, "base URL of the portfolio API")

	rootCmd.AddCommand(resumesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
