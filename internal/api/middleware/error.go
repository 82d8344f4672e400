package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler middleware recovers panics, logs them and answers with an
// INTERNAL_ERROR body
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic",
			zap.String("op", "middleware.ErrorHandler"),
			zap.String("path", c.Request.URL.Path),
			zap.String("panic", fmt.Sprint(recovered)),
		)
		if err, ok := recovered.(string); ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": err,
				},
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "An unexpected error occurred",
				},
			})
		}
		c.Abort()
	})
}
