// Package gitlab is a minimal GitLab REST API v4 client covering what the
// migration needs: issues, epics, and issue notes.
package gitlab

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dt-pm-tools/gitlab2jira/internal/config"
)

// Client is a GitLab REST API v4 client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new GitLab client from the given config. The config URL
// should point at the API root, e.g. https://gitlab.example.com/api/v4.
func NewClient(cfg config.GitLabConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{},
	}
}

// FetchIssues lists issues of a project. state may be "opened", "closed", or
// "all" (no filter).
func (c *Client) FetchIssues(projectID string, state string) ([]Issue, error) {
	u := fmt.Sprintf("%s/projects/%s/issues", c.baseURL, url.PathEscape(projectID))
	if state != "" && state != "all" {
		u += "?state=" + url.QueryEscape(state)
	}

	var issues []Issue
	if err := c.get(u, &issues); err != nil {
		return nil, fmt.Errorf("fetching issues for project %s: %w", projectID, err)
	}
	return issues, nil
}

// FetchEpics lists epics of a group.
func (c *Client) FetchEpics(groupID string) ([]Epic, error) {
	u := fmt.Sprintf("%s/groups/%s/epics", c.baseURL, url.PathEscape(groupID))

	var epics []Epic
	if err := c.get(u, &epics); err != nil {
		return nil, fmt.Errorf("fetching epics for group %s: %w", groupID, err)
	}
	return epics, nil
}

// FetchIssueNotes lists the comments of an issue, identified by its
// project-scoped IID.
func (c *Client) FetchIssueNotes(projectID string, issueIID int) ([]Note, error) {
	u := fmt.Sprintf("%s/projects/%s/issues/%d/notes", c.baseURL, url.PathEscape(projectID), issueIID)

	var notes []Note
	if err := c.get(u, &notes); err != nil {
		return nil, fmt.Errorf("fetching notes for issue %d: %w", issueIID, err)
	}
	return notes, nil
}

func (c *Client) get(url string, out any) error {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("PRIVATE-TOKEN", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("GitLab API returned %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
