// Package main implements the ihp_exam CLI for filling in and exporting the
// IHP03-01 exam form.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ihp_exam",
	Short: "IHP03-01 exam form",
	Long: "ihp_exam keeps a candidate's answers to the IHP03-01 content production exam " +
		"(Trim AS creative brief) in a local store and exports each tab as a paginated PDF.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	rootConfig    string
	rootStore     string
	rootStorePath string
	rootLogLevel  string
	rootLogFormat string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfig, "config", "", "Path to JSON or YAML config file")
	rootCmd.PersistentFlags().StringVar(&rootStore, "store", "", "Store backend: sqlite, memory or none")
	rootCmd.PersistentFlags().StringVar(&rootStorePath, "store-path", "", "Path to the SQLite store file")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&rootLogFormat, "log-format", "", "Log format: console or json")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
