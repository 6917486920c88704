// Command seed loads the static reference tables (Turkish foods, workout
// exercises) into the database, replacing any previous contents.
package main

import (
	"log"

	"github.com/apakhome20-stack/efebem/config"
	"github.com/apakhome20-stack/efebem/models"
	"github.com/apakhome20-stack/efebem/seed"
)

func main() {
	db := config.InitDB()

	if err := db.Where("1 = 1").Delete(&models.TurkishFood{}).Error; err != nil {
		log.Fatalf("failed to clear turkish_foods: %v", err)
	}
	foods := seed.Foods()
	if err := db.Create(&foods).Error; err != nil {
		log.Fatalf("failed to insert turkish foods: %v", err)
	}
	log.Printf("%d Turkish foods inserted", len(foods))

	if err := db.Where("1 = 1").Delete(&models.WorkoutExercise{}).Error; err != nil {
		log.Fatalf("failed to clear workout_exercises: %v", err)
	}
	exercises := seed.Exercises()
	if err := db.Create(&exercises).Error; err != nil {
		log.Fatalf("failed to insert workout exercises: %v", err)
	}
	log.Printf("%d workout exercises inserted", len(exercises))
}
