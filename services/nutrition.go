package services

import (
	"strings"

	"github.com/apakhome20-stack/efebem/models"
)

// Mifflin-St Jeor activity multipliers, keyed by the onboarding values the
// app sends. An unknown level is rejected instead of silently treated as
// sedentary.
var activityMultipliers = map[string]float64{
	"sedanter":  1.2,
	"hafif":     1.375,
	"orta":      1.55,
	"aktif":     1.725,
	"çok_aktif": 1.9,
}

const (
	weightLossDeficit = 500
	weightGainSurplus = 300
)

// ComputeDailyCalorieGoal derives the daily kcal target from onboarding
// data: BMR (Mifflin-St Jeor), scaled by the activity multiplier, then
// shifted by a fixed deficit or surplus depending on the goal weight.
// The result is truncated to whole kcal.
func ComputeDailyCalorieGoal(age int, gender string, heightCm, weightKg, goalWeightKg float64, activityLevel string) (int, error) {
	multiplier, ok := activityMultipliers[activityLevel]
	if !ok {
		return 0, ErrInvalidActivityLevel
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if strings.ToLower(gender) == "erkek" {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := bmr * multiplier

	switch {
	case goalWeightKg < weightKg:
		return int(tdee - weightLossDeficit), nil
	case goalWeightKg > weightKg:
		return int(tdee + weightGainSurplus), nil
	default:
		return int(tdee), nil
	}
}

// MacroTotals is the nutrition content of one portion.
type MacroTotals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// ApplyPortion scales the per-100g reference values linearly. No rounding
// happens here; values are rounded at presentation, not at storage.
func ApplyPortion(food *models.TurkishFood, grams float64) MacroTotals {
	m := grams / 100
	return MacroTotals{
		Calories: food.CaloriesPer100g * m,
		Protein:  food.ProteinPer100g * m,
		Carbs:    food.CarbsPer100g * m,
		Fat:      food.FatPer100g * m,
	}
}
