package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/paperdex/paperdex/internal/config"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a paperdex repository in the current directory",
	Long: `Create a .paperdex directory with default configuration.

Writes config.json (thresholds, request pacing) and venues.yml (the venue
and year-range table the fetch command crawls). Existing files are left
untouched, so init is safe to re-run.

Examples:
  pdx init
  pdx init --human`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting current directory: %v", err)
	}

	for _, dir := range []string{
		config.PaperdexPath(cwd),
		config.BackupPath(cwd),
		config.CachePath(cwd),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			exitWithError(ExitError, "creating %s: %v", dir, err)
		}
	}

	if _, err := os.Stat(config.ConfigPath(cwd)); os.IsNotExist(err) {
		cfg := &config.Config{}
		if err := cfg.Save(cwd); err != nil {
			exitWithError(ExitConfigError, "writing config: %v", err)
		}
	}

	if _, err := os.Stat(config.VenuesPath(cwd)); os.IsNotExist(err) {
		if err := config.SaveVenues(cwd, config.DefaultVenues()); err != nil {
			exitWithError(ExitConfigError, "writing venues: %v", err)
		}
	}

	if humanOutput {
		fmt.Printf("Initialized paperdex repository in %s\n", config.PaperdexPath(cwd))
	} else {
		outputJSON(StatusResponse{Status: "initialized", Path: config.PaperdexPath(cwd)})
	}
	return nil
}
