package gitlab

// Issue represents a GitLab issue from the REST API v4.
type Issue struct {
	ID          int      `json:"id"`
	IID         int      `json:"iid"`
	ProjectID   int      `json:"project_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	State       string   `json:"state"` // "opened" or "closed"
	Labels      []string `json:"labels,omitempty"`
	Author      User     `json:"author"`
	WebURL      string   `json:"web_url,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

// Epic represents a GitLab group epic.
type Epic struct {
	ID          int    `json:"id"`
	IID         int    `json:"iid"`
	GroupID     int    `json:"group_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	State       string `json:"state"`
	CreatedAt   string `json:"created_at"`
}

// Note represents a comment on a GitLab issue.
type Note struct {
	ID        int    `json:"id"`
	Body      string `json:"body"`
	Author    User   `json:"author"`
	System    bool   `json:"system"` // true for auto-generated activity notes
	CreatedAt string `json:"created_at"`
}

// User represents a GitLab user.
type User struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}
