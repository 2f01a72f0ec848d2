package http

import (
	"github.com/gin-gonic/gin"
)

// processSubmitReq binds and validates the submit request body.
func (h *handler) processSubmitReq(c *gin.Context) (submitReq, error) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
