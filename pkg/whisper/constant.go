package whisper

import "time"

const (
	// DefaultBaseURL is the default OpenAI API endpoint.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the transcription model.
	DefaultModel = "whisper-1"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 60 * time.Second

	// MaxClipDuration is the recording ceiling enforced before any upstream call.
	MaxClipDuration = 60 * time.Second

	// MaxAudioBytes is the upstream's own upload limit (25 MB), enforced locally.
	MaxAudioBytes = 25 << 20

	// DefaultFilename is used when the upload carries no filename.
	DefaultFilename = "recording.webm"
)
