package models

import "time"

type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	// Email uniqueness is enforced in the service layer, scoped to
	// non-deleted rows; a DB unique index would block re-registering an
	// email whose original account was soft-deleted.
	Email        string `gorm:"index;not null" json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	Picture      string `json:"picture,omitempty"`

	// Onboarding fields; zero until onboarding completes.
	Age              int     `json:"age,omitempty"`
	Gender           string  `json:"gender,omitempty"`
	HeightCm         float64 `json:"height_cm,omitempty"`
	WeightKg         float64 `json:"weight_kg,omitempty"`
	GoalWeightKg     float64 `json:"goal_weight_kg,omitempty"`
	ActivityLevel    string  `json:"activity_level,omitempty"`
	DailyCalorieGoal int     `json:"daily_calorie_goal,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	IsDeleted bool      `gorm:"index" json:"-"`
}

// NeedsOnboarding reports whether the user still has to go through onboarding.
func (u *User) NeedsOnboarding() bool {
	return u.Age == 0
}
