package http

import (
	"voice-task-uploader/internal/model"
	"voice-task-uploader/internal/task"
)

type submitReq struct {
	Content    string            `json:"content" binding:"required"`
	Structured *model.Suggestion `json:"structured"`
	ProjectID  string            `json:"project_id"`
}

func (req submitReq) toInput() task.SubmitInput {
	return task.SubmitInput{
		Content:    req.Content,
		Structured: req.Structured,
		ProjectID:  req.ProjectID,
	}
}

type submitResp struct {
	TaskID            string            `json:"task_id"`
	TaskURL           string            `json:"task_url,omitempty"`
	SubtaskIDs        []string          `json:"subtask_ids,omitempty"`
	ParsedContent     map[string]string `json:"parsed_content"`
	StructuredPayload model.Suggestion  `json:"structured_payload"`
	CalendarEventID   string            `json:"calendar_event_id,omitempty"`
	CalendarError     string            `json:"calendar_error,omitempty"`
}

func newSubmitResp(out task.SubmitOutput) submitResp {
	resp := submitResp{
		SubtaskIDs:        out.SubtaskIDs,
		ParsedContent:     out.Sections,
		StructuredPayload: out.Structured,
		CalendarEventID:   out.CalendarEventID,
		CalendarError:     out.CalendarError,
	}
	if out.Task != nil {
		resp.TaskID = out.Task.ID
		resp.TaskURL = out.Task.URL
	}
	return resp
}
