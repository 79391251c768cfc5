package cmd

import (
	"fmt"

	"github.com/dt-pm-tools/gitlab2jira/internal/migrate"
	"github.com/spf13/cobra"
)

var (
	migrateProjectID string
	migrateGroupID   string
	migrateDryRun    bool
	migrateSkipEpics bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate GitLab issues and epics into a Jira project",
	Long: `Fetches issues (and optionally group epics) from GitLab, converts their
markdown bodies to Jira wiki markup, creates matching Jira issues, replays
comments, and transitions statuses per the configured mappings.

Use --dry-run to print the Jira payloads without creating anything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateProjectID == "" {
			return fmt.Errorf("--project-id is required")
		}

		if err := loadConfig(); err != nil {
			return err
		}

		m := migrate.New(appConfig)
		m.DryRun = migrateDryRun

		if err := m.MigrateIssues(migrateProjectID); err != nil {
			return fmt.Errorf("migrating issues: %w", err)
		}

		if migrateGroupID != "" && !migrateSkipEpics {
			if err := m.MigrateEpics(migrateGroupID); err != nil {
				return fmt.Errorf("migrating epics: %w", err)
			}
		}

		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateProjectID, "project-id", "", "GitLab project ID for issues (required)")
	migrateCmd.Flags().StringVar(&migrateGroupID, "group-id", "", "GitLab group ID for epics")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview Jira payloads without creating anything")
	migrateCmd.Flags().BoolVar(&migrateSkipEpics, "skip-epics", false, "skip epic migration even when --group-id is set")
	rootCmd.AddCommand(migrateCmd)
}
