package models

import "time"

type WorkoutLog struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"index;not null" json:"user_id"`
	ExerciseName    string    `json:"exercise_name"`
	DurationMinutes int       `json:"duration_minutes"`
	CaloriesBurned  float64   `json:"calories_burned"`
	LoggedAt        time.Time `gorm:"index" json:"logged_at"`
	IsDeleted       bool      `gorm:"index" json:"-"`
}
