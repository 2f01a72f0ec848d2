package dictation

import (
	"context"

	"voice-task-uploader/internal/model"
)

// UseCase defines the business logic interface for the dictation domain:
// one uploaded audio clip in, a transcript plus a structured task
// suggestion out.
type UseCase interface {
	// Process transcribes the clip and generates a task suggestion for it.
	// The transcript and suggestion are returned to the client and never
	// persisted server-side.
	Process(ctx context.Context, sc model.Scope, sess model.Session, input ProcessInput) (ProcessOutput, error)
}
