package usecase

import (
	"context"

	"voice-task-uploader/internal/account"
	"voice-task-uploader/pkg/llmprovider"
	"voice-task-uploader/pkg/log"
	"voice-task-uploader/pkg/todoist"
	"voice-task-uploader/pkg/whisper"
)

// suggestionEngine is the slice of the provider manager this use case needs.
type suggestionEngine interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// implUseCase is the private implementation of dictation.UseCase.
type implUseCase struct {
	l           log.Logger
	accounts    account.IStore
	transcriber whisper.ITranscriber
	llm         suggestionEngine
	todoist     todoist.ITodoist
	tempDir     string
}

// New creates a new dictation UseCase implementation. tempDir of "" uses
// the system default.
func New(
	l log.Logger,
	accounts account.IStore,
	transcriber whisper.ITranscriber,
	llm suggestionEngine,
	td todoist.ITodoist,
	tempDir string,
) *implUseCase {
	return &implUseCase{
		l:           l,
		accounts:    accounts,
		transcriber: transcriber,
		llm:         llm,
		todoist:     td,
		tempDir:     tempDir,
	}
}
