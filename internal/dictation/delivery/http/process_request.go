package http

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"voice-task-uploader/internal/dictation"
)

// processProcessReq reads the multipart upload: the "audio" file part and
// the optional "duration" field (seconds, as reported by the recorder).
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq

	fh, err := c.FormFile("audio")
	if err != nil {
		return req, dictation.ErrNoAudio
	}

	f, err := fh.Open()
	if err != nil {
		return req, fmt.Errorf("failed to open audio upload: %w", err)
	}
	defer f.Close()

	req.audio, err = io.ReadAll(f)
	if err != nil {
		return req, fmt.Errorf("failed to read audio upload: %w", err)
	}
	req.filename = fh.Filename

	if raw := strings.TrimSpace(c.PostForm("duration")); raw != "" {
		seconds, err := strconv.ParseFloat(raw, 64)
		if err != nil || seconds < 0 {
			return req, fmt.Errorf("invalid duration value %q", raw)
		}
		req.durationSeconds = seconds
	}

	return req, nil
}
