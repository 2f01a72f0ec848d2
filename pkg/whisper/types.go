package whisper

import "time"

// TranscribeRequest is the input for a single transcription call.
type TranscribeRequest struct {
	// APIKey is the per-account OpenAI API key.
	APIKey string

	// Audio is the raw audio clip (webm/ogg/wav/mp3 as recorded by the browser).
	Audio []byte

	// Filename is the upload filename; the upstream uses its extension to
	// detect the container format. Defaults to "recording.webm".
	Filename string

	// Language is an optional ISO-639-1 language hint (e.g. "pl").
	Language string

	// ClipDuration is the client-reported clip length. Zero means unknown.
	ClipDuration time.Duration
}
