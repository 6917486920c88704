package routes

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/apakhome20-stack/efebem/controllers"
	"github.com/apakhome20-stack/efebem/middlewares"
	"github.com/apakhome20-stack/efebem/services"
	"github.com/apakhome20-stack/efebem/utils"
)

// SetupRouter wires services and controllers around the injected DB handle
// and mounts the /api surface.
func SetupRouter(db *gorm.DB) *gin.Engine {
	authSvc := services.NewAuthService(db, services.NewSessionGateway())
	refSvc := services.NewReferenceService(db)
	foodSvc := services.NewFoodLogService(db, refSvc)
	workoutSvc := services.NewWorkoutLogService(db)
	statsSvc := services.NewStatsService(db)
	achievementSvc := services.NewAchievementService(db)
	visionSvc := services.NewVisionService()

	uploader, err := utils.NewImageUploader()
	if err != nil {
		// Picture upload degrades gracefully when AWS credentials are absent.
		log.Printf("image uploader disabled: %v", err)
	}

	authCtl := controllers.NewAuthController(authSvc, uploader)
	foodCtl := controllers.NewFoodLogController(foodSvc, visionSvc)
	workoutCtl := controllers.NewWorkoutController(workoutSvc)
	statsCtl := controllers.NewStatsController(statsSvc)
	refCtl := controllers.NewReferenceController(refSvc)
	achievementCtl := controllers.NewAchievementController(achievementSvc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/session", authCtl.ExchangeSession)
	}

	authRequired := middlewares.AuthMiddleware(authSvc)

	authed := api.Group("/auth")
	authed.Use(authRequired)
	{
		authed.GET("/me", authCtl.Me)
		authed.POST("/logout", authCtl.Logout)
		authed.POST("/onboarding", authCtl.Onboarding)
		authed.PUT("/me/picture", authCtl.UpdatePicture)
	}

	// Public reference tables
	api.GET("/turkish-foods", refCtl.TurkishFoods)
	api.GET("/workout-exercises", refCtl.WorkoutExercises)

	protected := api.Group("")
	protected.Use(authRequired)
	{
		protected.POST("/analyze-food", foodCtl.AnalyzeFood)
		protected.GET("/food-logs", foodCtl.List)
		protected.POST("/food-logs/manual", foodCtl.AddManual)
		protected.DELETE("/food-logs/:id", foodCtl.Delete)

		protected.GET("/workout-logs", workoutCtl.List)
		protected.POST("/workout-logs", workoutCtl.Add)
		protected.DELETE("/workout-logs/:id", workoutCtl.Delete)

		protected.GET("/stats/daily", statsCtl.Daily)
		protected.GET("/stats/weekly", statsCtl.Weekly)

		protected.GET("/achievements", achievementCtl.List)
	}

	return r
}
