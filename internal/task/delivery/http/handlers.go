package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-uploader/internal/middleware"
	"voice-task-uploader/pkg/response"
)

// Submit godoc
// @Summary     Submit the edited suggestion to Todoist
// @Description Parses the edited section text and creates the parent task plus one subtask per task item. Mirrors the task to Google Calendar when configured.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body submitReq true "Edited suggestion"
// @Success     200 {object} submitResp
// @Failure     400 {object} response.Resp "Empty content, missing summary, or no project selected"
// @Failure     401 {object} response.Resp "Not logged in or Todoist rejected the token"
// @Failure     502 {object} response.Resp "Todoist unreachable"
// @Router      /api/v1/tasks [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Submit(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Submit: %v", err)
		response.ErrorWithStatus(c, h.errorStatus(err), h.mapError(err), nil)
		return
	}

	response.OK(c, newSubmitResp(out))
}
