package models

import "time"

// FoodLog records one eaten food, either entered manually against the
// Turkish food table or produced by image analysis. Rows are never
// hard-deleted, only flagged.
type FoodLog struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index;not null" json:"user_id"`
	FoodName    string    `json:"food_name"`
	PortionSize string    `json:"portion_size"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fat         float64   `json:"fat"`
	ImageBase64 string    `json:"image_base64,omitempty"`
	LoggedAt    time.Time `gorm:"index" json:"logged_at"`
	IsDeleted   bool      `gorm:"index" json:"-"`
}
