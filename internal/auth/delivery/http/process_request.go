package http

import (
	"github.com/gin-gonic/gin"
)

// processLoginReq binds and validates the login request body.
func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processLanguageReq binds and validates the language selection body.
func (h *handler) processLanguageReq(c *gin.Context) (languageReq, error) {
	var req languageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
