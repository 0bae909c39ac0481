package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/surdiana/worklog/internal/constants"
	"github.com/surdiana/worklog/internal/dto"
	apperrors "github.com/surdiana/worklog/internal/errors"
	"github.com/surdiana/worklog/internal/middleware"
	"github.com/surdiana/worklog/internal/service"
	"github.com/surdiana/worklog/pkg/logger"
	"go.uber.org/zap"
)

type AuthHandler struct {
	userService *service.UserService
	production  bool
}

func NewAuthHandler(userService *service.UserService, production bool) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		production:  production,
	}
}

// setTokenCookie writes the session cookie. Secure only in production so
// local http development keeps working.
func (h *AuthHandler) setTokenCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		constants.TokenCookieName,
		token,
		maxAge,
		constants.TokenCookiePath,
		"",
		h.production,
		true,
	)
}

// Login handles credential exchange
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().Warn("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(
			"Invalid request format", middleware.FormatBindingError(err)))
		return
	}

	response, err := h.userService.Login(c.Request.Context(), req.NIP, req.Password)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	h.setTokenCookie(c, response.Token, constants.TokenCookieMaxAge)

	c.JSON(http.StatusOK, response)
}

// Logout instructs the client to discard its credential. Tokens are
// stateless, so there is nothing to revoke server-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Logout successful"))
}

// Profile returns the authenticated user's public view
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse("Unauthorized", nil))
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		constants.ResponseFieldData: user,
	})
}
