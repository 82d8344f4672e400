package handlers

import (
	"net/http"

	"household-calc/internal/api/models"
	"household-calc/internal/borrow"

	"github.com/gin-gonic/gin"
)

// ListPresets handles GET /api/presets
func ListPresets(c *gin.Context) {
	presets := make([]models.PresetInfo, 0, len(borrow.Presets))
	for _, p := range borrow.Presets {
		presets = append(presets, models.PresetInfo{
			Name:          p.Name,
			Description:   p.Description,
			FrontEndRatio: p.FrontEnd,
			BackEndRatio:  p.BackEnd,
		})
	}

	c.JSON(http.StatusOK, gin.H{"presets": presets})
}
