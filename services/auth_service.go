package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/apakhome20-stack/efebem/models"
	"github.com/apakhome20-stack/efebem/utils"
)

// SessionTTL is the fixed lifetime of every session token.
const SessionTTL = 7 * 24 * time.Hour

type AuthService struct {
	db      *gorm.DB
	gateway *SessionGateway
}

func NewAuthService(db *gorm.DB, gateway *SessionGateway) *AuthService {
	return &AuthService{db: db, gateway: gateway}
}

// Register creates a user and mints a first session. An active user with
// the same email blocks registration; a soft-deleted one does not.
func (s *AuthService) Register(email, password, name string) (*models.User, string, error) {
	var count int64
	if err := s.db.Model(&models.User{}).
		Where("email = ? AND is_deleted = ?", email, false).
		Count(&count).Error; err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", ErrDuplicateEmail
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hashed,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := s.mintSession(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login verifies credentials and mints a new session. Existing sessions
// stay valid; there is no single-session-per-user rule.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	var user models.User
	err := s.db.Where("email = ? AND is_deleted = ?", email, false).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if user.PasswordHash == "" {
		// Account came in through the OAuth gateway and has no password.
		return nil, "", ErrOAuthAccount
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.mintSession(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// ExchangeExternalSession trades an OAuth gateway session id for a local
// session. The user record is created on first sight, matched by email
// afterwards; the gateway's token becomes the local session token as is.
func (s *AuthService) ExchangeExternalSession(sessionID string) (*models.User, string, error) {
	external, err := s.gateway.FetchSession(sessionID)
	if err != nil {
		return nil, "", err
	}

	var user models.User
	err = s.db.Where("email = ? AND is_deleted = ?", external.Email, false).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			ID:        uuid.NewString(),
			Email:     external.Email,
			Name:      external.Name,
			Picture:   external.Picture,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, "", err
		}
	} else if err != nil {
		return nil, "", err
	}

	if err := s.createSession(user.ID, external.SessionToken); err != nil {
		return nil, "", err
	}
	return &user, external.SessionToken, nil
}

// Authenticate resolves a bearer token into its active user. Runs on every
// protected request; one session lookup plus one user lookup, no cache.
func (s *AuthService) Authenticate(token string) (*models.User, error) {
	var session models.UserSession
	err := s.db.Where("session_token = ? AND expires_at > ?", token, time.Now().UTC()).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	err = s.db.Where("id = ? AND is_deleted = ?", session.UserID, false).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout removes the session row. Deleting an unknown token is a no-op.
func (s *AuthService) Logout(token string) error {
	return s.db.Where("session_token = ?", token).Delete(&models.UserSession{}).Error
}

// OnboardingInput carries the profile data collected after first login.
type OnboardingInput struct {
	Age           int     `json:"age" binding:"required"`
	Gender        string  `json:"gender" binding:"required"`
	HeightCm      float64 `json:"height_cm" binding:"required"`
	WeightKg      float64 `json:"weight_kg" binding:"required"`
	GoalWeightKg  float64 `json:"goal_weight_kg" binding:"required"`
	ActivityLevel string  `json:"activity_level" binding:"required"`
}

// CompleteOnboarding stores the profile and the derived daily calorie goal.
func (s *AuthService) CompleteOnboarding(userID string, input OnboardingInput) (int, error) {
	goal, err := ComputeDailyCalorieGoal(
		input.Age, input.Gender,
		input.HeightCm, input.WeightKg, input.GoalWeightKg,
		input.ActivityLevel,
	)
	if err != nil {
		return 0, err
	}

	err = s.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"age":                input.Age,
		"gender":             input.Gender,
		"height_cm":          input.HeightCm,
		"weight_kg":          input.WeightKg,
		"goal_weight_kg":     input.GoalWeightKg,
		"activity_level":     input.ActivityLevel,
		"daily_calorie_goal": goal,
	}).Error
	if err != nil {
		return 0, err
	}
	return goal, nil
}

// SetPicture stores the uploaded profile picture URL.
func (s *AuthService) SetPicture(userID, url string) error {
	return s.db.Model(&models.User{}).Where("id = ?", userID).Update("picture", url).Error
}

func (s *AuthService) mintSession(userID string) (string, error) {
	token, err := utils.GenerateSessionToken()
	if err != nil {
		return "", err
	}
	if err := s.createSession(userID, token); err != nil {
		return "", err
	}
	return token, nil
}

// createSession stores the token row. The OAuth gateway can replay the
// same token across exchanges, so an existing row just gets its expiry
// refreshed.
func (s *AuthService) createSession(userID, token string) error {
	session := models.UserSession{SessionToken: token}
	return s.db.Where("session_token = ?", token).
		Assign(models.UserSession{
			UserID:    userID,
			ExpiresAt: time.Now().UTC().Add(SessionTTL),
			CreatedAt: time.Now().UTC(),
		}).
		FirstOrCreate(&session).Error
}
