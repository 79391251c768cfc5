package jira

// IssuePayload is the body for POST /rest/api/2/issue. Fields is an open map
// because the set of populated fields depends on the configured field
// mappings (plus custom fields like the epic name).
type IssuePayload struct {
	Fields map[string]any `json:"fields"`
}

// CreatedIssue is the response to a successful issue creation.
type CreatedIssue struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}

// CommentPayload is the body for POST /rest/api/2/issue/{key}/comment.
// The body is Jira wiki markup.
type CommentPayload struct {
	Body string `json:"body"`
}

// TransitionInfo describes one available workflow transition.
type TransitionInfo struct {
	ID   string           `json:"id"`
	Name string           `json:"name"`
	To   TransitionTarget `json:"to"`
}

// TransitionTarget is the status a transition leads to.
type TransitionTarget struct {
	Name string `json:"name"`
}

// TransitionsResponse wraps the transitions list from the JIRA API.
type TransitionsResponse struct {
	Transitions []TransitionInfo `json:"transitions"`
}

// TransitionPayload is the body for POST /rest/api/2/issue/{key}/transitions.
type TransitionPayload struct {
	Transition Transition `json:"transition"`
}

// Transition identifies the transition to perform.
type Transition struct {
	ID string `json:"id"`
}
