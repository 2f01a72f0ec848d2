package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"voice-task-uploader/internal/model"
)

// Section names produced by the suggestion formatter.
const (
	sectionProject     = "Project"
	sectionTaskSummary = "Task Summary"
	sectionTasks       = "Tasks"
	sectionPriority    = "Priority"
	sectionDueDate     = "Due Date"
	sectionLabels      = "Labels"
)

// emptyTasksPlaceholder is what the formatter emits when a suggestion has
// no task items; it is not a real subtask.
const emptyTasksPlaceholder = "(none)"

var sectionKeyPattern = regexp.MustCompile(`^!!([^!]+)!!(?::\s*(.*))?$`)

// parseSections splits !!Key!! formatted text into a section map. A key
// line may carry an inline value; following lines up to the next key are
// appended to the current section.
func parseSections(content string) map[string]string {
	sections := make(map[string]string)
	if content == "" {
		return sections
	}

	var (
		currentKey string
		buffer     []string
	)

	flush := func() {
		if currentKey != "" {
			sections[currentKey] = strings.TrimSpace(strings.Join(buffer, "\n"))
		}
		buffer = nil
	}

	for _, rawLine := range strings.Split(content, "\n") {
		if m := sectionKeyPattern.FindStringSubmatch(strings.TrimSpace(rawLine)); m != nil {
			flush()
			currentKey = strings.TrimSpace(m[1])
			if m[2] != "" {
				buffer = []string{m[2]}
			}
			continue
		}
		if currentKey != "" {
			buffer = append(buffer, strings.TrimRight(rawLine, " \t"))
		}
	}

	flush()
	return sections
}

// buildStructured derives the Todoist payload from parsed sections. Used
// when the client did not send its own structured copy.
func buildStructured(sections map[string]string) model.Suggestion {
	var s model.Suggestion

	s.Project = strings.TrimSpace(sections[sectionProject])
	s.TaskSummary = strings.TrimSpace(sections[sectionTaskSummary])
	s.Tasks = parseTaskItems(sections[sectionTasks])

	if raw := strings.TrimSpace(sections[sectionPriority]); raw != "" {
		if priority, err := strconv.Atoi(raw); err == nil {
			s.Priority = priority
		}
	}

	s.DueDate = strings.TrimSpace(sections[sectionDueDate])

	if raw := strings.TrimSpace(sections[sectionLabels]); raw != "" {
		for _, label := range strings.Split(raw, ",") {
			if label = strings.TrimSpace(label); label != "" {
				s.Labels = append(s.Labels, label)
			}
		}
	}

	return s
}

// parseTaskItems extracts subtask lines from the Tasks section, stripping
// the leading list dash and skipping the empty-list placeholder.
func parseTaskItems(block string) []string {
	var items []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "-"))
		if line == "" || line == emptyTasksPlaceholder {
			continue
		}
		items = append(items, line)
	}
	return items
}
