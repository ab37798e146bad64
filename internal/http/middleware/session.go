package middleware

import (
	"net/http"
	"strings"

	"taxiops/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "taxiops_session"

	userIDKey   = "userId"
	userNameKey = "userName"
)

// RequireSession rejects requests without a valid dashboard session. The
// token comes from "Authorization: Bearer" or the session cookie.
func RequireSession(tokens services.SessionTokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			if v, err := c.Cookie(SessionCookie); err == nil {
				raw = v
			}
		}
		if raw == "" {
			abortUnauthorized(c, "login required")
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			abortUnauthorized(c, "session expired, please log in again")
			return
		}
		c.Set(userIDKey, claims.UserID)
		c.Set(userNameKey, claims.Name)
		c.Next()
	}
}

// CurrentUser returns the id and name stored by RequireSession.
func CurrentUser(c *gin.Context) (id, name string) {
	return c.GetString(userIDKey), c.GetString(userNameKey)
}

func bearerToken(h string) string {
	h = strings.TrimSpace(h)
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      msg,
		"code":       "unauthorized",
		"message":    msg,
		"request_id": GetRequestID(c),
	})
}
