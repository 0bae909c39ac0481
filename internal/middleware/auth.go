package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/surdiana/worklog/internal/constants"
	"github.com/surdiana/worklog/internal/service"
	"github.com/surdiana/worklog/pkg/logger"
	"go.uber.org/zap"
)

// tokenExtractor pulls a candidate token out of one transport channel
type tokenExtractor struct {
	source  string
	extract func(c *gin.Context) string
}

// Extraction strategies tried in order; the cookie takes precedence over the
// Authorization header. Adding a transport is one more entry here.
var tokenExtractors = []tokenExtractor{
	{
		source: "cookie",
		extract: func(c *gin.Context) string {
			token, err := c.Cookie(constants.TokenCookieName)
			if err != nil {
				return ""
			}
			return token
		},
	},
	{
		source: "bearer",
		extract: func(c *gin.Context) string {
			parts := strings.Split(c.GetHeader("Authorization"), " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return ""
			}
			return parts[1]
		},
	},
}

type AuthMiddleware struct {
	jwtService *service.JWTService
}

func NewAuthMiddleware(jwtService *service.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// RequireAuth resolves the session token and sets the identity in the gin
// context. Every failure mode returns the same 401 body; only the logs say
// whether the credential was missing, invalid, or malformed.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString, source string
		for _, extractor := range tokenExtractors {
			if candidate := extractor.extract(c); candidate != "" {
				tokenString = candidate
				source = extractor.source
				break
			}
		}

		if tokenString == "" {
			logger.GetLogger().Warn("Missing credential",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			m.reject(c)
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			logger.GetLogger().Warn("Invalid or expired token",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.String("token_source", source),
			)
			m.reject(c)
			return
		}

		userID, ok := service.UserIDFromClaims(claims)
		if !ok {
			// token signed under a previous claims schema
			logger.GetLogger().Warn("Token payload lacks numeric user id",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.String("token_source", source),
			)
			m.reject(c)
			return
		}

		c.Set(constants.CtxKeyUserID, userID)
		if nip, ok := claims["nip"].(string); ok {
			c.Set(constants.CtxKeyNIP, nip)
		}
		if name, ok := claims["name"].(string); ok {
			c.Set(constants.CtxKeyName, name)
		}

		logger.GetLogger().Debug("User authenticated",
			zap.Uint("user_id", userID),
			zap.String("token_source", source),
			zap.String("path", c.Request.URL.Path),
		)

		c.Next()
	}
}

func (m *AuthMiddleware) reject(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"message": "Unauthorized",
	})
	c.Abort()
}

// UserIDFromContext reads the identity set by RequireAuth
func UserIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.CtxKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}
