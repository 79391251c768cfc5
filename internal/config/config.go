package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// GitLabConfig holds GitLab API connection settings.
type GitLabConfig struct {
	URL   string `yaml:"url"   mapstructure:"url"`
	Token string `yaml:"token" mapstructure:"token"`
}

// JiraConfig holds Jira API connection and project settings.
type JiraConfig struct {
	URL             string `yaml:"url"             mapstructure:"url"`
	Email           string `yaml:"email"           mapstructure:"email"`
	Token           string `yaml:"token"           mapstructure:"token"`
	ProjectKey      string `yaml:"projectKey"                mapstructure:"projectKey"`
	IssueType       string `yaml:"issueType,omitempty"       mapstructure:"issueType"`
	EpicIssueType   string `yaml:"epicIssueType,omitempty"   mapstructure:"epicIssueType"`
	EpicNameFieldID string `yaml:"epicNameFieldId,omitempty" mapstructure:"epicNameFieldId"`
}

// Config holds the full migration configuration.
type Config struct {
	GitLab GitLabConfig `yaml:"gitlab" mapstructure:"gitlab"`
	Jira   JiraConfig   `yaml:"jira"   mapstructure:"jira"`

	// FieldMappings maps GitLab issue fields to Jira field names, e.g.
	// title -> summary. Descriptions are converted to wiki markup on the way.
	FieldMappings map[string]string `yaml:"fieldMappings,omitempty" mapstructure:"fieldMappings"`

	// StatusMappings maps GitLab issue states (opened, closed) to Jira
	// status names used for transitions after creation.
	StatusMappings map[string]string `yaml:"statusMappings,omitempty" mapstructure:"statusMappings"`
}

// DefaultPath returns the default config file path (~/.gitlab2jira.yaml).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gitlab2jira.yaml"
	}
	return filepath.Join(home, ".gitlab2jira.yaml")
}

// Load reads config from the YAML file and applies env var overrides.
// configPath may be empty to use the default path.
func Load(configPath string) (Config, error) {
	v := viper.New()

	if configPath == "" {
		configPath = DefaultPath()
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Env var overrides
	v.BindEnv("gitlab.url", "GITLAB_URL")
	v.BindEnv("gitlab.token", "GITLAB_TOKEN")
	v.BindEnv("jira.url", "JIRA_URL")
	v.BindEnv("jira.email", "JIRA_EMAIL")
	v.BindEnv("jira.token", "JIRA_TOKEN")
	v.BindEnv("jira.projectKey", "JIRA_PROJECT_KEY")

	// Sensible defaults; override in the config file when the Jira project
	// uses custom type names.
	v.SetDefault("jira.issueType", "Task")
	v.SetDefault("jira.epicIssueType", "Epic")
	v.SetDefault("fieldMappings", map[string]string{
		"title":       "summary",
		"description": "description",
	})

	// Read the config file (ignore "not found" errors so env vars still work)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only ignore file-not-found; other errors (e.g. parse) are real
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Validate checks that required fields are present.
func (c Config) Validate() error {
	if c.GitLab.URL == "" {
		return fmt.Errorf("GitLab URL is required (set in config file or GITLAB_URL env var)")
	}
	if c.GitLab.Token == "" {
		return fmt.Errorf("GitLab token is required (set in config file or GITLAB_TOKEN env var)")
	}
	if c.Jira.URL == "" {
		return fmt.Errorf("Jira URL is required (set in config file or JIRA_URL env var)")
	}
	if c.Jira.Email == "" {
		return fmt.Errorf("Jira email is required (set in config file or JIRA_EMAIL env var)")
	}
	if c.Jira.Token == "" {
		return fmt.Errorf("Jira token is required (set in config file or JIRA_TOKEN env var)")
	}
	if c.Jira.ProjectKey == "" {
		return fmt.Errorf("Jira project key is required (set in config file or JIRA_PROJECT_KEY env var)")
	}
	return nil
}

// Save writes the config to the given path (or default path if empty).
func Save(cfg Config, configPath string) error {
	if configPath == "" {
		configPath = DefaultPath()
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
