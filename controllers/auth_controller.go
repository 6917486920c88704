package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apakhome20-stack/efebem/middlewares"
	"github.com/apakhome20-stack/efebem/services"
	"github.com/apakhome20-stack/efebem/utils"
)

type AuthController struct {
	Auth     *services.AuthService
	Uploader *utils.ImageUploader
}

func NewAuthController(auth *services.AuthService, uploader *utils.ImageUploader) *AuthController {
	return &AuthController{Auth: auth, Uploader: uploader}
}

type credentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// bindCredentials accepts the fields either as a JSON body or as query
// parameters; mobile clients still send the latter.
func bindCredentials(c *gin.Context) credentialsInput {
	var input credentialsInput
	_ = c.ShouldBindJSON(&input)
	if input.Email == "" {
		input.Email = c.Query("email")
	}
	if input.Password == "" {
		input.Password = c.Query("password")
	}
	if input.Name == "" {
		input.Name = c.Query("name")
	}
	return input
}

func (h *AuthController) Register(c *gin.Context) {
	input := bindCredentials(c)
	if input.Email == "" || input.Password == "" || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email, password ve name zorunlu"})
		return
	}

	user, token, err := h.Auth.Register(input.Email, input.Password, input.Name)
	if errors.Is(err, services.ErrDuplicateEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"success": true, "user_id": user.ID, "needs_onboarding": true})
}

func (h *AuthController) Login(c *gin.Context) {
	input := bindCredentials(c)
	if input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email ve password zorunlu"})
		return
	}

	user, token, err := h.Auth.Login(input.Email, input.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	case errors.Is(err, services.ErrOAuthAccount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"user_id":          user.ID,
		"needs_onboarding": user.NeedsOnboarding(),
	})
}

// ExchangeSession trades an OAuth gateway session_id for a local session.
func (h *AuthController) ExchangeSession(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id zorunlu"})
		return
	}

	user, token, err := h.Auth.ExchangeExternalSession(sessionID)
	if errors.Is(err, services.ErrInvalidExternalSession) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"user_id":          user.ID,
		"needs_onboarding": user.NeedsOnboarding(),
	})
}

func (h *AuthController) Me(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthController) Logout(c *gin.Context) {
	token, _ := c.Cookie("session_token")
	if token == "" {
		token = bearerToken(c)
	}
	if token != "" {
		if err := h.Auth.Logout(token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthController) Onboarding(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input services.OnboardingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.Auth.CompleteOnboarding(user.ID, input)
	if errors.Is(err, services.ErrInvalidActivityLevel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "daily_calorie_goal": goal})
}

type pictureInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

func (h *AuthController) UpdatePicture(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	if h.Uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image upload not configured"})
		return
	}

	var input pictureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := h.Uploader.UploadBase64Image(c.Request.Context(), input.ImageBase64, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.Auth.SetPicture(user.ID, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "picture": url})
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie("session_token", token, int(services.SessionTTL.Seconds()), "/", "", true, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie("session_token", "", -1, "/", "", true, true)
}
