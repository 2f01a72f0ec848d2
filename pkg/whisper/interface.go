package whisper

import "context"

// ITranscriber defines the interface for the speech-to-text client.
// Implementations are safe for concurrent use.
type ITranscriber interface {
	// Transcribe converts an audio clip to plain text.
	Transcribe(ctx context.Context, req TranscribeRequest) (string, error)
}

// New creates a new Whisper transcription client.
func New() *Client {
	return newClient()
}
