package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jannofresh/jannofresh-api/internal/domain/apperr"
	"github.com/jannofresh/jannofresh-api/pkg/helpers"
	"github.com/jannofresh/jannofresh-api/pkg/response"
)

// bearerToken pulls the credential from the Authorization header, falling
// back to the "token" cookie set for browser clients.
func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if strings.HasPrefix(h, "Bearer ") {
			return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		}
	}
	if v, err := c.Cookie("token"); err == nil {
		return v
	}
	return ""
}

// Auth verifies the bearer token and stores the subject user id in the
// context under "userID". Requests without a valid token are rejected with
// the same message whether the token is absent, malformed or expired.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := bearerToken(c)
		if tok == "" {
			response.Err(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}
		uid, err := jwt.Verify(tok)
		if err != nil {
			status, msg := apperr.Map(err, "Invalid token", true)
			response.Err(c, status, msg)
			c.Abort()
			return
		}
		c.Set("userID", uid)
		c.Next()
	}
}
