package whisper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// Guard errors returned before any upstream call is made.
var (
	ErrClipTooLong     = errors.New("audio clip exceeds the 60 second limit")
	ErrPayloadTooLarge = errors.New("audio payload exceeds the upload size limit")
	ErrEmptyAudio      = errors.New("audio payload is empty")
	ErrMissingAPIKey   = errors.New("openai api key is not configured")
)

// Client is the OpenAI Whisper transcription client.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

func newClient() *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		model:      DefaultModel,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// WithBaseURL overrides the API endpoint, mainly for tests.
func (c *Client) WithBaseURL(url string) *Client {
	c.baseURL = strings.TrimSuffix(url, "/")
	return c
}

// WithModel overrides the transcription model.
func (c *Client) WithModel(model string) *Client {
	c.model = model
	return c
}

// Transcribe sends the audio clip to POST /audio/transcriptions and returns
// the plain-text transcript. Oversized or overlong clips are rejected before
// the upstream call. A single attempt is made; no retry.
func (c *Client) Transcribe(ctx context.Context, req TranscribeRequest) (string, error) {
	if req.APIKey == "" {
		return "", ErrMissingAPIKey
	}
	if len(req.Audio) == 0 {
		return "", ErrEmptyAudio
	}
	if len(req.Audio) > MaxAudioBytes {
		return "", ErrPayloadTooLarge
	}
	if req.ClipDuration > MaxClipDuration {
		return "", ErrClipTooLong
	}

	filename := req.Filename
	if filename == "" {
		filename = DefaultFilename
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("whisper: failed to build multipart body: %w", err)
	}
	if _, err := part.Write(req.Audio); err != nil {
		return "", fmt.Errorf("whisper: failed to write audio part: %w", err)
	}

	if err := mw.WriteField("model", c.model); err != nil {
		return "", fmt.Errorf("whisper: failed to write model field: %w", err)
	}
	if err := mw.WriteField("response_format", "text"); err != nil {
		return "", fmt.Errorf("whisper: failed to write response_format field: %w", err)
	}
	if req.Language != "" {
		if err := mw.WriteField("language", req.Language); err != nil {
			return "", fmt.Errorf("whisper: failed to write language field: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("whisper: failed to finalize multipart body: %w", err)
	}

	url := fmt.Sprintf("%s/audio/transcriptions", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", fmt.Errorf("whisper: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	httpReq.Header.Set("Authorization", "Bearer "+req.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("whisper: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("whisper: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("whisper: API error %d: %s", resp.StatusCode, string(raw))
	}

	return strings.TrimSpace(string(raw)), nil
}

var _ ITranscriber = (*Client)(nil)
