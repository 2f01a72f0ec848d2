package dictation

import "errors"

var (
	// ErrNoAudio indicates the upload contained no audio data
	ErrNoAudio = errors.New("no audio file provided")

	// ErrMissingOpenAIKey indicates the account has no OpenAI key configured
	ErrMissingOpenAIKey = errors.New("no OpenAI API key configured for this account")

	// ErrMalformedResponse indicates the model returned content that does
	// not match the expected suggestion shape
	ErrMalformedResponse = errors.New("model response does not match the suggestion shape")
)
