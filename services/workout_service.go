package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/apakhome20-stack/efebem/models"
)

type WorkoutLogService struct {
	db *gorm.DB
}

func NewWorkoutLogService(db *gorm.DB) *WorkoutLogService {
	return &WorkoutLogService{db: db}
}

func (s *WorkoutLogService) Add(userID, exerciseName string, durationMinutes int, caloriesBurned float64) (*models.WorkoutLog, error) {
	entry := models.WorkoutLog{
		ID:              uuid.NewString(),
		UserID:          userID,
		ExerciseName:    exerciseName,
		DurationMinutes: durationMinutes,
		CaloriesBurned:  caloriesBurned,
		LoggedAt:        time.Now().UTC(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns the user's non-deleted entries, newest first. The optional
// filter opens a 24h window at the given instant; bare dates parse to
// midnight upstream.
func (s *WorkoutLogService) List(userID string, day *time.Time) ([]models.WorkoutLog, error) {
	q := s.db.Where("user_id = ? AND is_deleted = ?", userID, false)
	if day != nil {
		start := day.UTC()
		q = q.Where("logged_at >= ? AND logged_at < ?", start, start.Add(24*time.Hour))
	}
	var logs []models.WorkoutLog
	err := q.Order("logged_at DESC").Find(&logs).Error
	return logs, err
}

func (s *WorkoutLogService) SoftDelete(userID, logID string) error {
	return s.db.Model(&models.WorkoutLog{}).
		Where("id = ? AND user_id = ?", logID, userID).
		Update("is_deleted", true).Error
}
