package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/daily-missions-api/internal/config"
	"github.com/yukikurage/daily-missions-api/internal/database"
	"github.com/yukikurage/daily-missions-api/internal/handlers"
	"github.com/yukikurage/daily-missions-api/internal/repository"
	"github.com/yukikurage/daily-missions-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()
	missionRepo := repository.NewMissionRepository(db)
	userRepo := repository.NewUserRepository(db)
	completionRepo := repository.NewCompletionRepository(db)

	// Initialize handlers
	missionHandler := handlers.NewMissionHandler(services.NewMissionService(missionRepo))
	dailyHandler := handlers.NewDailyMissionHandler(services.NewDailyMissionService(missionRepo))
	userHandler := handlers.NewUserHandler(services.NewUserService(userRepo))
	completionHandler := handlers.NewCompletionHandler(
		services.NewCompletionService(completionRepo, userRepo, missionRepo),
	)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Daily Missions API is running",
		})
	})

	// Mission catalog routes
	missions := r.Group("/missions")
	{
		missions.GET("", missionHandler.ListMissions)
		missions.GET("/search", missionHandler.SearchMissions)
		missions.GET("/:id", missionHandler.GetMission)
		missions.POST("", missionHandler.CreateMission)
		missions.PUT("/:id", missionHandler.UpdateMission)
		missions.DELETE("/:id", missionHandler.DeleteMission)
	}

	// Daily rotation routes
	daily := r.Group("/daily-missions")
	{
		daily.GET("", dailyHandler.GetDailyMissions)
		daily.GET("/verify/:id", dailyHandler.VerifyDailyMission)
	}

	// Completion record routes
	completions := r.Group("/completions")
	{
		completions.GET("", completionHandler.ListCompletions)
		completions.GET("/:id", completionHandler.GetCompletion)
		completions.GET("/user/:userId", completionHandler.ListCompletionsByUser)
		completions.GET("/user/:userId/details", completionHandler.CompletedMissionDetails)
		completions.GET("/mission/:missionId", completionHandler.ListCompletionsByMission)
		completions.POST("/complete", completionHandler.CompleteMission)
		completions.DELETE("/:id", completionHandler.DeleteCompletion)
	}

	// User profile routes
	users := r.Group("/users")
	{
		users.GET("", userHandler.ListUsers)
		users.GET("/search/:name", userHandler.GetUserByName)
		users.GET("/:id", userHandler.GetUser)
		users.POST("", userHandler.CreateUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
