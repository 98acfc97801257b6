/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Global flags
var (
	logFile   string
	logLevel  string
	timeout   time.Duration
	noJournal bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sharkfin",
	Short: "Command-line client for the Grooveshark web service",
	Long: `sharkfin is a command-line client for the Grooveshark public web service.

It signs and sends service calls, prints catalog lookups as tables, and
keeps a local journal of every call it makes.

Credentials are read from ~/.config/sharkfin/config.yaml, ./config.yaml,
a .env file, or SHARKFIN_* environment variables. Run 'sharkfin configure'
to store the application key and secret.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (default: stderr)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error; default from config)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Request timeout (default from config)")
	rootCmd.PersistentFlags().BoolVar(&noJournal, "no-journal", false, "Do not record calls in the journal")
}
