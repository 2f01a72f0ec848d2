package usecase

import (
	"strconv"
	"strings"

	"voice-task-uploader/internal/model"
)

// formatSuggestionText renders the suggestion as the editable !!Key!!
// section text shown to the user. The submit flow parses this same format
// back into sections.
func formatSuggestionText(s model.Suggestion) string {
	lines := []string{
		"!!Project!!: " + s.Project,
		"!!Task Summary!!: " + s.TaskSummary,
		"!!Tasks!!:",
	}

	if len(s.Tasks) > 0 {
		for _, item := range s.Tasks {
			lines = append(lines, "- "+item)
		}
	} else {
		lines = append(lines, "- (none)")
	}

	lines = append(lines, "!!Priority!!: "+strconv.Itoa(s.Priority))

	if s.DueDate != "" {
		lines = append(lines, "!!Due Date!!: "+s.DueDate)
	}
	if len(s.Labels) > 0 {
		lines = append(lines, "!!Labels!!: "+strings.Join(s.Labels, ", "))
	}

	return strings.Join(lines, "\n")
}
