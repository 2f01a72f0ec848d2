package usecase

import (
	"context"
	"fmt"
	"os"
	"strings"

	"voice-task-uploader/internal/dictation"
	"voice-task-uploader/internal/model"
	"voice-task-uploader/pkg/todoist"
	"voice-task-uploader/pkg/whisper"
)

// Process transcribes the uploaded clip and generates a task suggestion.
// Transcription failures fail the request; suggestion and project-listing
// failures are reported inline so the user still gets the transcript.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, sess model.Session, input dictation.ProcessInput) (dictation.ProcessOutput, error) {
	var out dictation.ProcessOutput

	if len(input.Audio) == 0 {
		return out, dictation.ErrNoAudio
	}

	acc, err := uc.accounts.Get(sc.Username)
	if err != nil {
		return out, fmt.Errorf("dictation: failed to load account %s: %w", sc.Username, err)
	}
	if acc.Settings.OpenAIAPIKey == "" {
		return out, dictation.ErrMissingOpenAIKey
	}

	// The clip lives on disk only for the duration of the transcription
	// call and is removed no matter how the call ends.
	audio, cleanup, err := uc.spool(input)
	if err != nil {
		return out, err
	}
	defer cleanup()

	transcript, err := uc.transcriber.Transcribe(ctx, whisper.TranscribeRequest{
		APIKey:       acc.Settings.OpenAIAPIKey,
		Audio:        audio,
		Filename:     input.Filename,
		Language:     sess.LanguageCode,
		ClipDuration: input.ClipDuration,
	})
	if err != nil {
		return out, fmt.Errorf("dictation: transcription failed: %w", err)
	}
	out.Transcription = transcript

	if strings.TrimSpace(transcript) == "" {
		return out, nil
	}

	projects, names, projectsError := uc.fetchProjects(ctx, acc)
	out.Projects = projects
	out.ProjectsError = projectsError

	allowed := names
	if len(allowed) == 0 {
		allowed = acc.Settings.ProjectTypes
	}

	if projectsError != "" && len(allowed) == 0 {
		out.AssistantError = "could not generate suggestion: " + projectsError
		return out, nil
	}

	suggestion, err := uc.suggest(ctx, acc, transcript, allowed)
	if err != nil {
		uc.l.Warnf(ctx, "suggestion generation failed for %s: %v", acc.Username, err)
		out.AssistantError = "could not generate suggestion: " + err.Error()
		return out, nil
	}

	out.Structured = suggestion
	out.AssistantOutput = formatSuggestionText(*suggestion)
	return out, nil
}

// spool writes the clip to temporary storage and hands back its contents.
// The returned cleanup removes the file unconditionally.
func (uc *implUseCase) spool(input dictation.ProcessInput) ([]byte, func(), error) {
	f, err := os.CreateTemp(uc.tempDir, "dictation-*.webm")
	if err != nil {
		return nil, nil, fmt.Errorf("dictation: failed to create temp audio file: %w", err)
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := f.Write(input.Audio); err != nil {
		f.Close()
		cleanup()
		return nil, nil, fmt.Errorf("dictation: failed to write temp audio file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("dictation: failed to close temp audio file: %w", err)
	}

	audio, err := os.ReadFile(path)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("dictation: failed to read temp audio file: %w", err)
	}

	return audio, cleanup, nil
}

// fetchProjects lists the account's Todoist projects for the page dropdown
// and for constraining the suggestion. Failures are reported as a message,
// not an error; the caller may still fall back to static project types.
func (uc *implUseCase) fetchProjects(ctx context.Context, acc model.Account) ([]todoist.Project, []string, string) {
	if acc.Settings.TodoistAPIToken == "" {
		return nil, nil, "Todoist API token is not configured for this account"
	}

	projects, err := uc.todoist.ListProjects(ctx, acc.Settings.TodoistAPIToken)
	if err != nil {
		uc.l.Warnf(ctx, "failed to load todoist projects for %s: %v", acc.Username, err)
		return nil, nil, err.Error()
	}

	names := make([]string, 0, len(projects))
	for _, p := range projects {
		if name := strings.TrimSpace(p.Name); name != "" {
			names = append(names, name)
		}
	}

	return projects, names, ""
}
