package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-task-uploader/internal/middleware"
	"voice-task-uploader/pkg/response"
)

// Login godoc
// @Summary     Log in
// @Description Verifies credentials and sets the session cookie.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Failure     429 {object} response.Resp "Too many attempts"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.ErrorWithStatus(c, h.errorStatus(err), h.mapError(err), nil)
		return
	}

	h.setSessionCookie(c, out.Session.ID, h.cookie.MaxAgeSeconds)
	response.OK(c, h.newLoginResp(out))
}

// Logout godoc
// @Summary     Log out
// @Description Deletes the session and clears the cookie.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Not logged in"
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.GetSession(c)

	if err := h.uc.Logout(ctx, sess.ID); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.InternalError(c, err)
		return
	}

	h.setSessionCookie(c, "", -1)
	response.OK(c, gin.H{"logged_out": true})
}

// Page godoc
// @Summary     Recording page data
// @Description Returns the language picker state and the account's Todoist projects.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} pageResp
// @Failure     401 {object} response.Resp "Not logged in"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/page [GET]
func (h *handler) Page(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Page(ctx, middleware.GetScope(c), middleware.GetSession(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Page: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newPageResp(out))
}

// SetLanguage godoc
// @Summary     Select transcription language
// @Description Updates the session's transcription language selection.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body languageReq true "Language key (US, PL, UA)"
// @Success     200 {object} languageResp
// @Failure     400 {object} response.Resp "Unsupported language"
// @Failure     401 {object} response.Resp "Not logged in"
// @Router      /api/v1/language [POST]
func (h *handler) SetLanguage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLanguageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sess, err := h.uc.SetLanguage(ctx, middleware.GetSession(c), req.Language)
	if err != nil {
		h.l.Warnf(ctx, "uc.SetLanguage: %v", err)
		response.ErrorWithStatus(c, h.errorStatus(err), h.mapError(err), nil)
		return
	}

	response.OK(c, languageResp{LanguageKey: sess.LanguageKey, LanguageCode: sess.LanguageCode})
}

func (h *handler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, value, maxAge, "/", "", h.cookie.Secure, true)
}
