package todoist

import "time"

const (
	// DefaultBaseURL is the default Todoist API host
	DefaultBaseURL = "https://api.todoist.com"

	// tasksPath is the REST endpoint for task creation
	tasksPath = "/rest/v2/tasks"

	// projectsPath is the unified API endpoint for project listing
	projectsPath = "/api/v1/projects"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 15 * time.Second
)

// Task priorities as Todoist encodes them: 1 is normal, 4 is urgent.
const (
	PriorityNormal = 1
	PriorityUrgent = 4
)
