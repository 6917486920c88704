package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/apakhome20-stack/efebem/models"
)

// searchLimit caps reference lookups; the food table holds a few hundred
// rows at most, callers never page.
const searchLimit = 50

type ReferenceService struct {
	db *gorm.DB
}

func NewReferenceService(db *gorm.DB) *ReferenceService {
	return &ReferenceService{db: db}
}

// SearchFoods returns foods whose name contains term, case-insensitively,
// capped at 50 results. An empty term lists the first 50 rows.
func (s *ReferenceService) SearchFoods(term string) ([]models.TurkishFood, error) {
	var foods []models.TurkishFood
	q := s.db.Limit(searchLimit)
	if term != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(term)+"%")
	}
	err := q.Find(&foods).Error
	return foods, err
}

// FindFoodByName returns the first food whose name contains query.
func (s *ReferenceService) FindFoodByName(query string) (*models.TurkishFood, error) {
	var food models.TurkishFood
	err := s.db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%").First(&food).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

// SearchExercises mirrors SearchFoods over the exercise table.
func (s *ReferenceService) SearchExercises(term string) ([]models.WorkoutExercise, error) {
	var exercises []models.WorkoutExercise
	q := s.db.Limit(searchLimit)
	if term != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(term)+"%")
	}
	err := q.Find(&exercises).Error
	return exercises, err
}
