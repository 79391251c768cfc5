package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/dt-pm-tools/gitlab2jira/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure GitLab and Jira connection settings",
	Long:  `Interactively set up GitLab and Jira URLs, credentials, and the target project key. Settings are saved to ~/.gitlab2jira.yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)

		// Load existing config for defaults
		existing, _ := config.Load(cfgFile)

		gitlabURL := promptString(reader, "GitLab API URL (e.g., https://gitlab.com/api/v4)", existing.GitLab.URL)
		gitlabToken, err := promptSecret("GitLab token (input hidden): ", existing.GitLab.Token)
		if err != nil {
			return err
		}

		jiraURL := promptString(reader, "Jira URL (e.g., https://your-org.atlassian.net)", existing.Jira.URL)
		jiraEmail := promptString(reader, "Jira email", existing.Jira.Email)
		jiraToken, err := promptSecret("Jira API token (input hidden): ", existing.Jira.Token)
		if err != nil {
			return err
		}
		projectKey := promptString(reader, "Jira project key", existing.Jira.ProjectKey)

		cfg := existing
		cfg.GitLab = config.GitLabConfig{URL: gitlabURL, Token: gitlabToken}
		cfg.Jira.URL = jiraURL
		cfg.Jira.Email = jiraEmail
		cfg.Jira.Token = jiraToken
		cfg.Jira.ProjectKey = projectKey

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}

		if err := config.Save(cfg, path); err != nil {
			return err
		}

		fmt.Printf("Configuration saved to %s\n", path)
		return nil
	},
}

// promptString asks for a value, offering the existing one as default.
func promptString(reader *bufio.Reader, label string, def string) string {
	if def != "" {
		fmt.Printf("%s [%s]: ", label, def)
	} else {
		fmt.Printf("%s: ", label)
	}
	value, _ := reader.ReadString('\n')
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	return value
}

// promptSecret reads a token without echoing it; empty input keeps the
// existing value.
func promptSecret(label string, def string) (string, error) {
	fmt.Print(label)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // newline after hidden input
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}
	value := strings.TrimSpace(string(raw))
	if value == "" {
		return def, nil
	}
	return value, nil
}

func init() {
	rootCmd.AddCommand(configCmd)
}
