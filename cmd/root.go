package cmd

import (
	"fmt"
	"os"

	"github.com/dt-pm-tools/gitlab2jira/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	appConfig config.Config
	version   = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:     "gitlab2jira",
	Short:   "GitLab -> Jira markup conversion and issue migration",
	Long:    `Converts GitLab-flavored Markdown to Jira wiki markup and migrates GitLab issues, epics, and comments into a Jira project.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.gitlab2jira.yaml)")
}

// loadConfig loads and validates configuration. Commands that need API access call this.
func loadConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w\nRun 'gitlab2jira config' to set up credentials", err)
	}
	appConfig = cfg
	return nil
}
