package usecase

import (
	"context"
	"fmt"
	"strings"

	"voice-task-uploader/internal/model"
	"voice-task-uploader/internal/task"
	"voice-task-uploader/pkg/gcalendar"
	"voice-task-uploader/pkg/todoist"
)

// Submit creates the parent task and its subtasks in Todoist. The first
// Todoist failure aborts the submission; the calendar mirror is best-effort.
func (uc *implUseCase) Submit(ctx context.Context, sc model.Scope, input task.SubmitInput) (task.SubmitOutput, error) {
	var out task.SubmitOutput

	acc, err := uc.accounts.Get(sc.Username)
	if err != nil {
		return out, fmt.Errorf("task: failed to load account %s: %w", sc.Username, err)
	}
	if acc.Settings.TodoistAPIToken == "" {
		return out, task.ErrMissingTodoistToken
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return out, task.ErrEmptyContent
	}

	sections := parseSections(content)
	out.Sections = sections

	structured := buildStructured(sections)
	if input.Structured != nil {
		structured = *input.Structured
		if len(structured.Tasks) == 0 {
			structured.Tasks = parseTaskItems(sections[sectionTasks])
		}
	}

	summary := strings.TrimSpace(sections[sectionTaskSummary])
	if summary == "" {
		return out, task.ErrMissingTaskSummary
	}

	projectID := strings.TrimSpace(input.ProjectID)
	if projectID == "" {
		projectID = strings.TrimSpace(acc.Settings.TodoistProjectID)
	}
	if projectID == "" {
		return out, task.ErrNoProjectSelected
	}
	out.Structured = structured

	parent, err := uc.todoist.CreateTask(ctx, acc.Settings.TodoistAPIToken, todoist.CreateTaskRequest{
		Content:   summary,
		ProjectID: projectID,
		Priority:  structured.Priority,
		DueDate:   structured.DueDate,
		Labels:    structured.Labels,
	})
	if err != nil {
		return out, fmt.Errorf("task: failed to create todoist task: %w", err)
	}
	out.Task = parent
	uc.l.Infof(ctx, "created todoist task %s in project %s for %s", parent.ID, projectID, sc.Username)

	subtaskDue := ""
	if acc.Settings.SubtaskDeadlineMethod == model.SubtaskDeadlineSameDate {
		subtaskDue = structured.DueDate
	}

	for _, item := range structured.Tasks {
		sub, err := uc.todoist.CreateTask(ctx, acc.Settings.TodoistAPIToken, todoist.CreateTaskRequest{
			Content:   item,
			ProjectID: projectID,
			ParentID:  parent.ID,
			Priority:  structured.Priority,
			DueDate:   subtaskDue,
			Labels:    structured.Labels,
		})
		if err != nil {
			return out, fmt.Errorf("task: failed to create subtask %q: %w", item, err)
		}
		out.SubtaskIDs = append(out.SubtaskIDs, sub.ID)
	}

	uc.mirrorToCalendar(ctx, summary, parent, structured, &out)
	return out, nil
}

// mirrorToCalendar creates an all-day calendar event for the parent task.
// Requires a configured calendar client and a due date; failures are
// reported inline, never returned.
func (uc *implUseCase) mirrorToCalendar(ctx context.Context, summary string, parent *todoist.Task, structured model.Suggestion, out *task.SubmitOutput) {
	if uc.calendar == nil || structured.DueDate == "" {
		return
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     summary,
		Description: structured.TaskSummary + "\n\n" + parent.URL,
		DueDate:     structured.DueDate,
	})
	if err != nil {
		uc.l.Warnf(ctx, "failed to mirror task %s to calendar: %v", parent.ID, err)
		out.CalendarError = err.Error()
		return
	}

	out.CalendarEventID = event.ID
}
