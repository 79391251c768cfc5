// Package migrate copies issues and epics from a GitLab project into a Jira
// project, converting markdown bodies to wiki markup on the way.
package migrate

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dt-pm-tools/gitlab2jira/internal/config"
	"github.com/dt-pm-tools/gitlab2jira/internal/gitlab"
	"github.com/dt-pm-tools/gitlab2jira/internal/jira"
	"github.com/dt-pm-tools/gitlab2jira/internal/wiki"
)

// Migrator drives a GitLab → Jira migration. DryRun previews the payloads on
// the log writer instead of creating anything.
type Migrator struct {
	cfg    config.Config
	gitlab *gitlab.Client
	jira   *jira.Client

	DryRun bool
	Log    io.Writer
}

// New creates a Migrator with clients built from the config. Progress goes to
// stderr unless Log is replaced.
func New(cfg config.Config) *Migrator {
	return &Migrator{
		cfg:    cfg,
		gitlab: gitlab.NewClient(cfg.GitLab),
		jira:   jira.NewClient(cfg.Jira),
		Log:    os.Stderr,
	}
}

// MigrateIssues copies all issues of a GitLab project, replays their
// comments, and transitions the created Jira issues per the status mappings.
func (m *Migrator) MigrateIssues(projectID string) error {
	m.logf("Fetching issues from GitLab...")
	issues, err := m.gitlab.FetchIssues(projectID, "all")
	if err != nil {
		return err
	}
	m.logf("Found %d issues.", len(issues))

	for _, issue := range issues {
		m.logf("Processing issue: %s (IID %d, state %s)", issue.Title, issue.IID, issue.State)

		payload := m.issuePayload(issue)
		key, err := m.createIssue(payload)
		if err != nil {
			return fmt.Errorf("creating issue for %q: %w", issue.Title, err)
		}

		if status := m.cfg.StatusMappings[issue.State]; status != "" {
			if err := m.transition(key, status); err != nil {
				return fmt.Errorf("transitioning %s: %w", key, err)
			}
		}

		if err := m.migrateNotes(projectID, issue, key); err != nil {
			return err
		}
	}

	return nil
}

// MigrateEpics copies all epics of a GitLab group.
func (m *Migrator) MigrateEpics(groupID string) error {
	m.logf("Fetching epics from GitLab...")
	epics, err := m.gitlab.FetchEpics(groupID)
	if err != nil {
		return err
	}
	m.logf("Found %d epics.", len(epics))

	for _, epic := range epics {
		m.logf("Processing epic: %s (IID %d)", epic.Title, epic.IID)
		if _, err := m.createIssue(m.epicPayload(epic)); err != nil {
			return fmt.Errorf("creating epic for %q: %w", epic.Title, err)
		}
	}

	return nil
}

func (m *Migrator) migrateNotes(projectID string, issue gitlab.Issue, issueKey string) error {
	notes, err := m.gitlab.FetchIssueNotes(projectID, issue.IID)
	if err != nil {
		return err
	}

	for _, note := range notes {
		if note.System {
			// Activity entries ("changed the description", ...) are noise in
			// the target project.
			continue
		}
		body := fmt.Sprintf("%s commented on %s:\n\n%s",
			note.Author.Name, note.CreatedAt, wiki.ConvertGitLabToJira(note.Body))

		if m.DryRun {
			m.logf("DRY RUN: would comment on %s: %q", issueKey, body)
			continue
		}
		if err := m.jira.CreateComment(issueKey, body); err != nil {
			return fmt.Errorf("commenting on %s: %w", issueKey, err)
		}
	}

	return nil
}

func (m *Migrator) createIssue(payload jira.IssuePayload) (string, error) {
	if m.DryRun {
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshalling payload: %w", err)
		}
		m.logf("DRY RUN: would create issue:\n%s", data)
		return "DRY-RUN-KEY", nil
	}

	created, err := m.jira.CreateIssue(payload)
	if err != nil {
		return "", err
	}
	m.logf("Created %s", created.Key)
	return created.Key, nil
}

func (m *Migrator) transition(issueKey string, status string) error {
	if m.DryRun {
		m.logf("DRY RUN: would transition %s to %q", issueKey, status)
		return nil
	}
	return m.jira.TransitionTo(issueKey, status)
}

// issuePayload maps GitLab issue fields to Jira fields per the configured
// field mappings. The description passes through the wiki converter.
func (m *Migrator) issuePayload(issue gitlab.Issue) jira.IssuePayload {
	fields := map[string]any{
		"project":   map[string]string{"key": m.cfg.Jira.ProjectKey},
		"issuetype": map[string]string{"name": m.cfg.Jira.IssueType},
	}
	for glField, jiraField := range m.cfg.FieldMappings {
		if v, ok := issueFieldValue(issue, glField); ok {
			fields[jiraField] = v
		}
	}
	return jira.IssuePayload{Fields: fields}
}

func (m *Migrator) epicPayload(epic gitlab.Epic) jira.IssuePayload {
	fields := map[string]any{
		"project":   map[string]string{"key": m.cfg.Jira.ProjectKey},
		"issuetype": map[string]string{"name": m.cfg.Jira.EpicIssueType},
		"summary":   epic.Title,
	}
	if epic.Description != "" {
		fields["description"] = wiki.ConvertGitLabToJira(epic.Description)
	}
	if m.cfg.Jira.EpicNameFieldID != "" {
		fields[m.cfg.Jira.EpicNameFieldID] = epic.Title
	}
	return jira.IssuePayload{Fields: fields}
}

func issueFieldValue(issue gitlab.Issue, field string) (any, bool) {
	switch field {
	case "title":
		return issue.Title, true
	case "description":
		return wiki.ConvertGitLabToJira(issue.Description), true
	case "labels":
		return issue.Labels, true
	case "state":
		return issue.State, true
	case "web_url":
		return issue.WebURL, true
	case "created_at":
		return issue.CreatedAt, true
	}
	return nil, false
}

func (m *Migrator) logf(format string, args ...any) {
	fmt.Fprintf(m.Log, format+"\n", args...)
}
