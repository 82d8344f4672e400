package handlers

import (
	"net/http"

	"household-calc/internal/api/models"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes and validates the body. On failure it writes a 400 and
// returns false.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return false
	}
	return true
}

func respondError(c *gin.Context, status int, code, message string, details map[string]interface{}) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
