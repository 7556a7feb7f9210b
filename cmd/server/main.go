package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jwschwaner/calorietracker-app/internal/api"
	"github.com/jwschwaner/calorietracker-app/internal/catalog"
	"github.com/jwschwaner/calorietracker-app/internal/repository"
	"github.com/jwschwaner/calorietracker-app/internal/service"
	"github.com/jwschwaner/calorietracker-app/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment variables")
	}

	// Storage
	dbPath := os.Getenv("STORAGE_PATH")
	if dbPath == "" {
		dbPath = "calorietracker.db"
	}
	store, err := storage.NewSQLite(dbPath)
	if err != nil {
		log.Fatal("Failed to open storage: ", err)
	}

	// Catalog
	cat, err := catalog.LoadBundled()
	if err != nil {
		log.Fatal("Failed to load ingredient catalog: ", err)
	}
	log.Printf("Loaded %d ingredients", len(cat.All()))

	// Repositories
	dailyRepo := repository.NewDailyDetailsRepo(store)
	userRepo := repository.NewUserDataRepo(store)

	// Services
	calculatorURL := os.Getenv("CALCULATOR_URL")
	if calculatorURL == "" {
		log.Fatal("CALCULATOR_URL not set")
	}
	calculator := service.NewDailyCalorieCalculatorService(calculatorURL, nil)
	ingredientsService := service.NewIngredientsService(cat, dailyRepo)
	userDataService := service.NewUserDataService(userRepo, dailyRepo, calculator)

	// Router
	router := gin.New()
	router.Use(api.RequestLogger(), api.CORS(), gin.Recovery())
	api.SetupRoutes(router, api.NewHandlers(ingredientsService, userDataService, dailyRepo))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Calorie tracker API starting on :" + port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to run server: ", err)
	}
}
