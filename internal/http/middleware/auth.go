package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/edusphere-backend/internal/platform/ctxutil"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
)

// TokenParser resolves a bearer token to a uid.
type TokenParser interface {
	ParseAccessToken(tokenString string) (string, error)
	TokensEnabled() bool
}

type AuthMiddleware struct {
	log    *logger.Logger
	tokens TokenParser
}

func NewAuthMiddleware(log *logger.Logger, tokens TokenParser) *AuthMiddleware {
	return &AuthMiddleware{log: log.With("middleware", "AuthMiddleware"), tokens: tokens}
}

// OptionalAuth attaches the caller's uid to the request context when a valid
// bearer token is present. Requests are never rejected.
func (am *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if am.tokens == nil || !am.tokens.TokensEnabled() {
			c.Next()
			return
		}
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.Next()
			return
		}
		uid, err := am.tokens.ParseAccessToken(tokenString)
		if err != nil {
			am.log.Debug("ignoring invalid bearer token", "error", err)
			c.Next()
			return
		}
		ctx := ctxutil.WithRequestData(c.Request.Context(), &ctxutil.RequestData{UserID: uid})
		c.Request = c.Request.WithContext(ctx)
		c.Set("user_id", uid)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
