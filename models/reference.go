package models

// TurkishFood is a static nutrition-facts row, keyed by a slug of the
// food name. Loaded by the seed tool, read-only at runtime.
type TurkishFood struct {
	ID              string  `gorm:"primaryKey" json:"id"`
	Name            string  `gorm:"index;not null" json:"name"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	ProteinPer100g  float64 `json:"protein_per_100g"`
	CarbsPer100g    float64 `json:"carbs_per_100g"`
	FatPer100g      float64 `json:"fat_per_100g"`
	Category        string  `json:"category"`
}

// WorkoutExercise is a static per-minute calorie-burn row, same lifecycle
// as TurkishFood.
type WorkoutExercise struct {
	ID                string  `gorm:"primaryKey" json:"id"`
	Name              string  `gorm:"index;not null" json:"name"`
	CaloriesPerMinute float64 `json:"calories_per_minute"`
	Category          string  `json:"category"`
	Intensity         string  `json:"intensity"`
}
