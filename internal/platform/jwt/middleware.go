package jwtmw

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"wealth_backend/internal/platform/http/response"
)

// ContextUserID is the gin context key holding the authenticated user id.
const ContextUserID = "userID"

// Verifier validates a bearer token and returns its subject.
type Verifier interface {
	Verify(token string) (userID string, ok bool)
}

// SubjectChecker reports whether a verified subject still exists.
// Tokens outlive nothing server-side, so a deleted user's token would otherwise keep working.
type SubjectChecker interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

// Principal is the result of a successful authentication.
type Principal struct {
	UserID string
}

// Authenticate extracts the bearer token from an Authorization header value and verifies it.
func Authenticate(v Verifier, authorization string) (Principal, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		return Principal{}, false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authorization, prefix))
	if token == "" {
		return Principal{}, false
	}
	userID, ok := v.Verify(token)
	if !ok {
		return Principal{}, false
	}
	return Principal{UserID: userID}, true
}

// AuthRequired returns middleware that admits only requests carrying a valid bearer token.
// Every failure cause produces the same 401 body. users may be nil to skip the existence check.
func AuthRequired(v Verifier, users SubjectChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := Authenticate(v, c.GetHeader("Authorization"))
		if !ok {
			response.Unauthenticated(c)
			return
		}

		if users != nil {
			exists, err := users.Exists(c.Request.Context(), p.UserID)
			if err != nil {
				response.Error(c, err)
				return
			}
			if !exists {
				slog.Warn("token subject no longer exists", "user_id", p.UserID, "remote_addr", c.ClientIP())
				response.Unauthenticated(c)
				return
			}
		}

		c.Set(ContextUserID, p.UserID)
		c.Next()
	}
}

// UserID returns the authenticated user id bound by AuthRequired.
func UserID(c *gin.Context) (string, bool) {
	id := c.GetString(ContextUserID)
	return id, id != ""
}
