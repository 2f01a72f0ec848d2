package model

// NewProjectPrefix marks a suggested project that is not in the account's
// allowed project list. The user can then create the project manually.
const NewProjectPrefix = "NEWPROJECT: "

// Suggestion is the structured task proposal derived from transcribed speech.
// It is produced per request and never persisted server-side.
type Suggestion struct {
	Project     string   `json:"project"`
	TaskSummary string   `json:"task_summary"`
	Tasks       []string `json:"tasks"`
	Priority    int      `json:"priority"` // 1..4, 4 is highest
	DueDate     string   `json:"due_date,omitempty"`
	Labels      []string `json:"labels,omitempty"`
}
