package dictation

import (
	"time"

	"voice-task-uploader/internal/model"
	"voice-task-uploader/pkg/todoist"
)

// ProcessInput carries one uploaded audio clip.
type ProcessInput struct {
	Audio    []byte
	Filename string
	// ClipDuration is the client-reported recording length. Zero means unknown.
	ClipDuration time.Duration
}

// ProcessOutput is the transcription result plus the generated suggestion.
// The suggestion side can fail without failing the whole request; those
// failures are carried inline.
type ProcessOutput struct {
	Transcription   string
	AssistantOutput string
	Structured      *model.Suggestion
	Projects        []todoist.Project
	ProjectsError   string
	AssistantError  string
}
