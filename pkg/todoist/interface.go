package todoist

import "context"

// ITodoist defines the interface for the Todoist API client.
// The API token is passed per call because each account carries its own.
// Implementations are safe for concurrent use.
type ITodoist interface {
	// CreateTask creates a task and returns the Todoist representation.
	CreateTask(ctx context.Context, token string, req CreateTaskRequest) (*Task, error)

	// ListProjects returns all active projects, following cursor pagination.
	ListProjects(ctx context.Context, token string) ([]Project, error)
}

// New creates a new Todoist client.
func New() *Client {
	return newClient()
}
