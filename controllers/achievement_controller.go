package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apakhome20-stack/efebem/middlewares"
	"github.com/apakhome20-stack/efebem/services"
)

type AchievementController struct {
	Achievements *services.AchievementService
}

func NewAchievementController(svc *services.AchievementService) *AchievementController {
	return &AchievementController{Achievements: svc}
}

func (h *AchievementController) List(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	achievements, err := h.Achievements.List(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, achievements)
}
