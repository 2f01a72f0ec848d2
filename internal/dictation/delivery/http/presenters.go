package http

import (
	"time"

	"voice-task-uploader/internal/dictation"
	"voice-task-uploader/internal/model"
)

// processReq is the parsed multipart upload: the audio clip plus the
// client-reported recording length.
type processReq struct {
	audio           []byte
	filename        string
	durationSeconds float64
}

func (req processReq) toInput() dictation.ProcessInput {
	return dictation.ProcessInput{
		Audio:        req.audio,
		Filename:     req.filename,
		ClipDuration: time.Duration(req.durationSeconds * float64(time.Second)),
	}
}

type projectResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type processResp struct {
	Transcription       string            `json:"transcription"`
	AssistantOutput     string            `json:"assistant_output,omitempty"`
	AssistantStructured *model.Suggestion `json:"assistant_structured,omitempty"`
	Projects            []projectResp     `json:"projects"`
	ProjectsError       string            `json:"projects_error,omitempty"`
	AssistantError      string            `json:"assistant_error,omitempty"`
}

func newProcessResp(out dictation.ProcessOutput) processResp {
	projects := make([]projectResp, 0, len(out.Projects))
	for _, p := range out.Projects {
		projects = append(projects, projectResp{ID: p.ID, Name: p.Name})
	}

	return processResp{
		Transcription:       out.Transcription,
		AssistantOutput:     out.AssistantOutput,
		AssistantStructured: out.Structured,
		Projects:            projects,
		ProjectsError:       out.ProjectsError,
		AssistantError:      out.AssistantError,
	}
}
