package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jannofresh/jannofresh-api/config"
	"github.com/jannofresh/jannofresh-api/internal/domain/repository"
	"github.com/jannofresh/jannofresh-api/pkg/response"
)

// AdminOnly gates the back-office routes on the configured admin email
// allowlist. It must run after Auth so "userID" is populated; a valid user
// whose email is not listed gets a 403, never a 404.
func AdminOnly(users repository.UserRepository, cfg *config.Config, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("userID")
		if uid == "" {
			response.Err(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}
		u, err := users.FindByID(c.Request.Context(), uid)
		if err != nil {
			response.MappedErr(c, logger, err, "Not authorized", cfg.Production())
			c.Abort()
			return
		}
		if !cfg.IsAdmin(u.Email) {
			response.Err(c, http.StatusForbidden, "Admin access required")
			c.Abort()
			return
		}
		c.Set("adminEmail", u.Email)
		c.Next()
	}
}
