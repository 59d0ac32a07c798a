package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/saikumarkadapa/portfolio-api/internal/config"
	"github.com/spf13/cobra"
)

// Cfg holds the loaded configuration and is shared by every subcommand.
var Cfg *config.Config

// RootCmd is the base command of the portfolio CLI. The subcommands
// (run-server, migrate, seed, stats) register themselves via their own
// init() functions to avoid import cycles.
var RootCmd = &cobra.Command{
	Use:   "portfolio-api",
	Short: "Backend API for the portfolio website",
	Long: `Backend API for the portfolio website: serves projects, experiences,
visitor comments and contact-form submissions, and keeps the site
analytics counters up to date.`,
}

// Execute is called from main.go and runs the selected subcommand.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Configuration is loaded before any subcommand runs.
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	var err error
	Cfg, err = config.LoadConfig()
	if err != nil {
		log.Printf("Warning: Problem loading configuration: %v. Using default values.", err)
	}
}
