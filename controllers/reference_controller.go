package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apakhome20-stack/efebem/services"
)

type ReferenceController struct {
	Ref *services.ReferenceService
}

func NewReferenceController(ref *services.ReferenceService) *ReferenceController {
	return &ReferenceController{Ref: ref}
}

// TurkishFoods is public: the frontend queries it before the user logs in.
func (h *ReferenceController) TurkishFoods(c *gin.Context) {
	foods, err := h.Ref.SearchFoods(c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (h *ReferenceController) WorkoutExercises(c *gin.Context) {
	exercises, err := h.Ref.SearchExercises(c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, exercises)
}
