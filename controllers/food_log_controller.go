package controllers

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/apakhome20-stack/efebem/middlewares"
	"github.com/apakhome20-stack/efebem/services"
)

type FoodLogController struct {
	Logs   *services.FoodLogService
	Vision *services.VisionService
}

func NewFoodLogController(logs *services.FoodLogService, vision *services.VisionService) *FoodLogController {
	return &FoodLogController{Logs: logs, Vision: vision}
}

// AnalyzeFood accepts a multipart photo upload, runs it through the vision
// model and logs the result, keeping the image with the entry.
func (h *FoodLogController) AnalyzeFood(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file zorunlu"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	imageBase64 := base64.StdEncoding.EncodeToString(data)

	analysis, err := h.Vision.AnalyzeImage(imageBase64, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Logs.SaveAnalyzed(user.ID, analysis, imageBase64); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

func (h *FoodLogController) List(c *gin.Context) {
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

// AddManual logs a food by name: ?food_name=...&portion_grams=150
func (h *FoodLogController) AddManual(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	foodName := c.Query("food_name")
	grams, err := strconv.ParseFloat(c.Query("portion_grams"), 64)
	if foodName == "" || err != nil || grams <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food_name ve portion_grams zorunlu"})
		return
	}

	entry, err := h.Logs.AddManual(user.ID, foodName, grams)
	if errors.Is(err, services.ErrFoodNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *FoodLogController) Delete(c *gin.Context) {
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
