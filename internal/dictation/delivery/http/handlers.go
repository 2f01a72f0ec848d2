package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-uploader/internal/middleware"
	"voice-task-uploader/pkg/response"
)

// Process godoc
// @Summary     Transcribe a recording and suggest tasks
// @Description Accepts an audio clip, transcribes it and returns a structured task suggestion. Suggestion and project-listing failures are reported inline in the response body.
// @Tags        Dictation
// @Accept      multipart/form-data
// @Produce     json
// @Param       audio formData file true "Audio clip (webm/ogg/wav/mp3, max 60 seconds)"
// @Param       duration formData number false "Clip length in seconds as reported by the recorder"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Missing audio, clip too long, or account not configured"
// @Failure     401 {object} response.Resp "Not logged in"
// @Failure     413 {object} response.Resp "Upload too large"
// @Router      /api/v1/dictations [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Process(ctx, middleware.GetScope(c), middleware.GetSession(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Process: %v", err)
		response.ErrorWithStatus(c, h.errorStatus(err), h.mapError(err), nil)
		return
	}

	response.OK(c, newProcessResp(out))
}
