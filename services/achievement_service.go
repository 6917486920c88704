package services

import (
	"gorm.io/gorm"

	"github.com/apakhome20-stack/efebem/models"
)

type AchievementService struct {
	db *gorm.DB
}

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{db: db}
}

func (s *AchievementService) List(userID string) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := s.db.Where("user_id = ?", userID).
		Order("earned_at DESC").
		Find(&achievements).Error
	return achievements, err
}
