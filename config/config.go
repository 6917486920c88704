package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/apakhome20-stack/efebem/models"
)

// InitDB loads the environment, opens Postgres and migrates the schema.
// The handle is returned to the caller and passed down explicitly; there
// is no package-level DB.
func InitDB() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	return db
}

// Migrate creates or updates the schema. Shared with the seed tool and the
// test helpers.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.FoodLog{},
		&models.WorkoutLog{},
		&models.TurkishFood{},
		&models.WorkoutExercise{},
		&models.Achievement{},
	)
}
