package controllers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/apakhome20-stack/efebem/services"
)

func bearerToken(c *gin.Context) string {
	return strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
}

// optionalDate parses the ?date= filter when present.
func optionalDate(c *gin.Context) (*time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return nil, nil
	}
	t, err := services.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
