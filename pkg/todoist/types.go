package todoist

// CreateTaskRequest holds the fields for a new Todoist task.
// Content is required; everything else is optional.
type CreateTaskRequest struct {
	Content   string   `json:"content"`
	ProjectID string   `json:"project_id,omitempty"`
	ParentID  string   `json:"parent_id,omitempty"`
	Priority  int      `json:"priority,omitempty"`
	DueDate   string   `json:"due_date,omitempty"` // YYYY-MM-DD
	Labels    []string `json:"labels,omitempty"`
}

// Task is the Todoist representation of a created task.
type Task struct {
	ID        string   `json:"id"`
	Content   string   `json:"content"`
	ProjectID string   `json:"project_id"`
	ParentID  string   `json:"parent_id,omitempty"`
	Priority  int      `json:"priority"`
	Labels    []string `json:"labels,omitempty"`
	URL       string   `json:"url,omitempty"`
	Due       *TaskDue `json:"due,omitempty"`
}

// TaskDue is the due object attached to a task.
type TaskDue struct {
	Date      string `json:"date"`
	String    string `json:"string,omitempty"`
	Recurring bool   `json:"is_recurring,omitempty"`
}

// Project is a Todoist project.
type Project struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsArchived bool   `json:"is_archived,omitempty"`
}

// projectsPage is the paginated envelope returned by the projects endpoint.
type projectsPage struct {
	Results    []Project `json:"results"`
	NextCursor string    `json:"next_cursor"`
}
