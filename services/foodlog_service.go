package services

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/apakhome20-stack/efebem/models"
)

type FoodLogService struct {
	db  *gorm.DB
	ref *ReferenceService
}

func NewFoodLogService(db *gorm.DB, ref *ReferenceService) *FoodLogService {
	return &FoodLogService{db: db, ref: ref}
}

// AddManual logs a food by name against the Turkish food table, scaling its
// per-100g values by the portion.
func (s *FoodLogService) AddManual(userID, foodName string, portionGrams float64) (*models.FoodLog, error) {
	food, err := s.ref.FindFoodByName(foodName)
	if err != nil {
		return nil, err
	}

	totals := ApplyPortion(food, portionGrams)

	entry := models.FoodLog{
		ID:          uuid.NewString(),
		UserID:      userID,
		FoodName:    food.Name,
		PortionSize: strconv.FormatFloat(portionGrams, 'f', -1, 64) + "g",
		Calories:    totals.Calories,
		Protein:     totals.Protein,
		Carbs:       totals.Carbs,
		Fat:         totals.Fat,
		LoggedAt:    time.Now().UTC(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// SaveAnalyzed persists an image-analysis result, keeping the original
// image alongside the entry.
func (s *FoodLogService) SaveAnalyzed(userID string, analysis *FoodAnalysis, imageBase64 string) (*models.FoodLog, error) {
	entry := models.FoodLog{
		ID:          uuid.NewString(),
		UserID:      userID,
		FoodName:    analysis.FoodName,
		PortionSize: analysis.PortionSize,
		Calories:    analysis.Calories,
		Protein:     analysis.Protein,
		Carbs:       analysis.Carbs,
		Fat:         analysis.Fat,
		ImageBase64: imageBase64,
		LoggedAt:    time.Now().UTC(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns the user's non-deleted entries, newest first, optionally
// restricted to the 24h window starting at the filter timestamp. A bare
// date parses to midnight, so day filters behave as expected; a full
// timestamp starts the window at that instant.
func (s *FoodLogService) List(userID string, day *time.Time) ([]models.FoodLog, error) {
	q := s.db.Where("user_id = ? AND is_deleted = ?", userID, false)
	if day != nil {
		start := day.UTC()
		q = q.Where("logged_at >= ? AND logged_at < ?", start, start.Add(24*time.Hour))
	}
	var logs []models.FoodLog
	err := q.Order("logged_at DESC").Find(&logs).Error
	return logs, err
}

// SoftDelete flags the entry if it belongs to the user. Missing or foreign
// ids are silently a no-op.
func (s *FoodLogService) SoftDelete(userID, logID string) error {
	return s.db.Model(&models.FoodLog{}).
		Where("id = ? AND user_id = ?", logID, userID).
		Update("is_deleted", true).Error
}
