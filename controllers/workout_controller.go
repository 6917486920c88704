package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/apakhome20-stack/efebem/middlewares"
	"github.com/apakhome20-stack/efebem/services"
)

type WorkoutController struct {
	Logs *services.WorkoutLogService
}

func NewWorkoutController(logs *services.WorkoutLogService) *WorkoutController {
	return &WorkoutController{Logs: logs}
}

func (h *WorkoutController) List(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	day, err := optionalDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logs, err := h.Logs.List(user.ID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// Add logs a workout: ?exercise_name=...&duration_minutes=30&calories_burned=240
func (h *WorkoutController) Add(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	exerciseName := c.Query("exercise_name")
	duration, durErr := strconv.Atoi(c.Query("duration_minutes"))
	burned, burnErr := strconv.ParseFloat(c.Query("calories_burned"), 64)
	if exerciseName == "" || durErr != nil || burnErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exercise_name, duration_minutes ve calories_burned zorunlu"})
		return
	}

	entry, err := h.Logs.Add(user.ID, exerciseName, duration, burned)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *WorkoutController) Delete(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if err := h.Logs.SoftDelete(user.ID, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
