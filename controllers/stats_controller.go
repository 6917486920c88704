package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/apakhome20-stack/efebem/middlewares"
	"github.com/apakhome20-stack/efebem/services"
)

type StatsController struct {
	Stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{Stats: stats}
}

func (h *StatsController) Daily(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	target := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		t, err := services.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		target = t
	}

	summary, err := h.Stats.DailySummary(user, target)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *StatsController) Weekly(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	days, err := h.Stats.WeeklySummary(user.ID, time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, days)
}
