package response

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jannofresh/jannofresh-api/internal/domain/apperr"
)

// Err writes the storefront error shape: {"error": "..."}.
func Err(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// MappedErr funnels err through the error mapper and writes the result.
// fallback is the message used for unclassified errors; in production the raw
// error text stays in the logs only.
func MappedErr(c *gin.Context, logger *logrus.Logger, err error, fallback string, production bool) {
	status, msg := apperr.Map(err, fallback, production)
	if logger != nil && status >= 500 {
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"status":     status,
			"error":      err.Error(),
		}).Error(fallback)
	}
	Err(c, status, msg)
}
