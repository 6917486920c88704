package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/apakhome20-stack/efebem/models"
)

// defaultDailyGoal is reported until onboarding sets a real target.
const defaultDailyGoal = 2000

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type DailySummary struct {
	Date             string  `json:"date"`
	CaloriesConsumed float64 `json:"calories_consumed"`
	CaloriesBurned   float64 `json:"calories_burned"`
	NetCalories      float64 `json:"net_calories"`
	DailyGoal        int     `json:"daily_goal"`
	Protein          float64 `json:"protein"`
	Carbs            float64 `json:"carbs"`
	Fat              float64 `json:"fat"`
	MealsCount       int     `json:"meals_count"`
	WorkoutsCount    int     `json:"workouts_count"`
}

type WeeklyDay struct {
	Date             string  `json:"date"`
	CaloriesConsumed float64 `json:"calories_consumed"`
	CaloriesBurned   float64 `json:"calories_burned"`
	NetCalories      float64 `json:"net_calories"`
}

// DailySummary aggregates the user's non-deleted logs inside the 24h window
// containing date. A day without logs yields zero sums and counts.
func (s *StatsService) DailySummary(user *models.User, date time.Time) (*DailySummary, error) {
	start := DayStart(date)

	foodLogs, workoutLogs, err := s.logsInWindow(user.ID, start)
	if err != nil {
		return nil, err
	}

	out := &DailySummary{
		Date:          start.Format(time.RFC3339),
		DailyGoal:     user.DailyCalorieGoal,
		MealsCount:    len(foodLogs),
		WorkoutsCount: len(workoutLogs),
	}
	if out.DailyGoal == 0 {
		out.DailyGoal = defaultDailyGoal
	}

	for _, log := range foodLogs {
		out.CaloriesConsumed += log.Calories
		out.Protein += log.Protein
		out.Carbs += log.Carbs
		out.Fat += log.Fat
	}
	for _, log := range workoutLogs {
		out.CaloriesBurned += log.CaloriesBurned
	}
	out.NetCalories = out.CaloriesConsumed - out.CaloriesBurned

	return out, nil
}

// WeeklySummary produces one entry per day for the 7-day window ending at
// ref, oldest first.
func (s *StatsService) WeeklySummary(userID string, ref time.Time) ([]WeeklyDay, error) {
	windowStart := ref.UTC().AddDate(0, 0, -7)

	days := make([]WeeklyDay, 0, 7)
	for i := 0; i < 7; i++ {
		start := DayStart(windowStart.AddDate(0, 0, i))

		foodLogs, workoutLogs, err := s.logsInWindow(userID, start)
		if err != nil {
			return nil, err
		}

		day := WeeklyDay{Date: start.Format(time.RFC3339)}
		for _, log := range foodLogs {
			day.CaloriesConsumed += log.Calories
		}
		for _, log := range workoutLogs {
			day.CaloriesBurned += log.CaloriesBurned
		}
		day.NetCalories = day.CaloriesConsumed - day.CaloriesBurned
		days = append(days, day)
	}
	return days, nil
}

func (s *StatsService) logsInWindow(userID string, start time.Time) ([]models.FoodLog, []models.WorkoutLog, error) {
	end := start.Add(24 * time.Hour)

	var foodLogs []models.FoodLog
	if err := s.db.
		Where("user_id = ? AND is_deleted = ? AND logged_at >= ? AND logged_at < ?", userID, false, start, end).
		Find(&foodLogs).Error; err != nil {
		return nil, nil, err
	}

	var workoutLogs []models.WorkoutLog
	if err := s.db.
		Where("user_id = ? AND is_deleted = ? AND logged_at >= ? AND logged_at < ?", userID, false, start, end).
		Find(&workoutLogs).Error; err != nil {
		return nil, nil, err
	}
	return foodLogs, workoutLogs, nil
}
