package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/apakhome20-stack/efebem/models"
)

func seedFoodLog(t *testing.T, db *gorm.DB, userID string, loggedAt time.Time, calories, protein float64, deleted bool) {
	t.Helper()
	require.NoError(t, db.Create(&models.FoodLog{
		ID:       uuid.NewString(),
		UserID:   userID,
		FoodName: "Test Yemeği",
		Calories: calories,
		Protein:  protein,
		LoggedAt: loggedAt,
		IsDeleted: deleted,
	}).Error)
}

func seedWorkoutLog(t *testing.T, db *gorm.DB, userID string, loggedAt time.Time, burned float64, deleted bool) {
	t.Helper()
	require.NoError(t, db.Create(&models.WorkoutLog{
		ID:             uuid.NewString(),
		UserID:         userID,
		ExerciseName:   "Koşu",
		CaloriesBurned: burned,
		LoggedAt:       loggedAt,
		IsDeleted:      deleted,
	}).Error)
}

func TestDailySummary(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)

	user := &models.User{ID: "u1", Email: "a@b.c", DailyCalorieGoal: 2200}
	day := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	seedFoodLog(t, db, user.ID, day, 500, 20, false)
	seedFoodLog(t, db, user.ID, day.Add(2*time.Hour), 300, 10, false)
	seedFoodLog(t, db, user.ID, day, 999, 99, true)            // soft-deleted
	seedFoodLog(t, db, user.ID, day.AddDate(0, 0, 1), 777, 7, false) // next day
	seedFoodLog(t, db, "other-user", day, 123, 1, false)
	seedWorkoutLog(t, db, user.ID, day, 250, false)
	seedWorkoutLog(t, db, user.ID, day, 400, true) // soft-deleted

	got, err := svc.DailySummary(user, day)
	require.NoError(t, err)

	assert.Equal(t, 800.0, got.CaloriesConsumed)
	assert.Equal(t, 250.0, got.CaloriesBurned)
	assert.Equal(t, 550.0, got.NetCalories)
	assert.Equal(t, 30.0, got.Protein)
	assert.Equal(t, 2200, got.DailyGoal)
	assert.Equal(t, 2, got.MealsCount)
	assert.Equal(t, 1, got.WorkoutsCount)
}

func TestDailySummary_EmptyDayIsAllZeros(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)

	user := &models.User{ID: "u1", Email: "a@b.c"}
	got, err := svc.DailySummary(user, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Zero(t, got.CaloriesConsumed)
	assert.Zero(t, got.CaloriesBurned)
	assert.Zero(t, got.NetCalories)
	assert.Zero(t, got.MealsCount)
	assert.Zero(t, got.WorkoutsCount)
	// The goal falls back to the default before onboarding.
	assert.Equal(t, 2000, got.DailyGoal)
}

func TestWeeklySummary(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)

	ref := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	dayBefore := ref.AddDate(0, 0, -1)
	sixDaysAgo := ref.AddDate(0, 0, -6)

	seedFoodLog(t, db, "u1", dayBefore, 600, 0, false)
	seedWorkoutLog(t, db, "u1", dayBefore, 200, false)
	seedFoodLog(t, db, "u1", sixDaysAgo, 450, 0, false)
	seedFoodLog(t, db, "u1", dayBefore, 999, 0, true) // soft-deleted

	days, err := svc.WeeklySummary("u1", ref)
	require.NoError(t, err)
	require.Len(t, days, 7)

	// Oldest first: index 0 is seven days before ref.
	assert.Equal(t, DayStart(ref.AddDate(0, 0, -7)).Format(time.RFC3339), days[0].Date)
	assert.Equal(t, 450.0, days[1].CaloriesConsumed)
	assert.Equal(t, 600.0, days[6].CaloriesConsumed)
	assert.Equal(t, 200.0, days[6].CaloriesBurned)
	assert.Equal(t, 400.0, days[6].NetCalories)

	for _, d := range days[2:6] {
		assert.Zero(t, d.CaloriesConsumed)
		assert.Zero(t, d.CaloriesBurned)
	}
}
