package service

import "github.com/jwschwaner/calorietracker-app/internal/models"

// Tracking DTOs
type TrackIngredientDTO struct {
	IngredientName string
	Grams          float64
	MealType       models.MealType
}

// User data DTOs
type SubmitUserDataDTO struct {
	Gender        models.Gender
	Age           int
	HeightCm      float64
	WeightKg      float64
	ActivityLevel models.ActivityLevel
	Goal          models.Goal
}
