package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		GitLab: GitLabConfig{URL: "https://gitlab.example.com/api/v4", Token: "glpat-x"},
		Jira: JiraConfig{
			URL:        "https://example.atlassian.net",
			Email:      "me@example.com",
			Token:      "jira-token",
			ProjectKey: "PROJ",
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := validConfig()
	cfg.FieldMappings = map[string]string{"title": "summary", "description": "description"}
	cfg.StatusMappings = map[string]string{"closed": "Done"}

	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.GitLab, loaded.GitLab)
	assert.Equal(t, cfg.Jira.URL, loaded.Jira.URL)
	assert.Equal(t, cfg.Jira.ProjectKey, loaded.Jira.ProjectKey)
	assert.Equal(t, cfg.FieldMappings, loaded.FieldMappings)
	assert.Equal(t, cfg.StatusMappings, loaded.StatusMappings)
}

func TestLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, Save(validConfig(), path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Task", loaded.Jira.IssueType)
	assert.Equal(t, "Epic", loaded.Jira.EpicIssueType)
	assert.Equal(t, "summary", loaded.FieldMappings["title"])
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GITLAB_TOKEN", "env-token")
	t.Setenv("JIRA_PROJECT_KEY", "ENVKEY")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, Save(validConfig(), path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", loaded.GitLab.Token)
	assert.Equal(t, "ENVKEY", loaded.Jira.ProjectKey)
}

func TestLoadMissingFileUsesEnv(t *testing.T) {
	t.Setenv("GITLAB_URL", "https://gitlab.example.com/api/v4")
	t.Setenv("GITLAB_TOKEN", "tok")

	loaded, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "tok", loaded.GitLab.Token)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing gitlab url", func(c *Config) { c.GitLab.URL = "" }},
		{"missing gitlab token", func(c *Config) { c.GitLab.Token = "" }},
		{"missing jira url", func(c *Config) { c.Jira.URL = "" }},
		{"missing jira email", func(c *Config) { c.Jira.Email = "" }},
		{"missing jira token", func(c *Config) { c.Jira.Token = "" }},
		{"missing project key", func(c *Config) { c.Jira.ProjectKey = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, Save(validConfig(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
