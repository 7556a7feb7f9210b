package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwschwaner/calorietracker-app/internal/models"
	"github.com/jwschwaner/calorietracker-app/internal/repository"
	"github.com/jwschwaner/calorietracker-app/internal/service"
)

// Handlers holds the service dependencies for the HTTP surface.
type Handlers struct {
	ingredients *service.IngredientsService
	userData    *service.UserDataService
	dailyRepo   repository.DailyDetailsRepository
}

func NewHandlers(
	ingredients *service.IngredientsService,
	userData *service.UserDataService,
	dailyRepo repository.DailyDetailsRepository,
) *Handlers {
	return &Handlers{
		ingredients: ingredients,
		userData:    userData,
		dailyRepo:   dailyRepo,
	}
}

// ListIngredients - full catalog.
func (h *Handlers) ListIngredients(c *gin.Context) {
	c.JSON(http.StatusOK, h.ingredients.AllIngredients())
}

// SearchIngredients - substring search; a blank query yields an empty list.
func (h *Handlers) SearchIngredients(c *gin.Context) {
	matches := h.ingredients.SearchIngredients(c.Query("q"))
	if matches == nil {
		matches = []models.Ingredient{}
	}
	c.JSON(http.StatusOK, matches)
}

type trackIngredientRequest struct {
	IngredientName string  `json:"ingredientName" binding:"required"`
	Grams          float64 `json:"grams" binding:"required,gt=0"`
	MealType       string  `json:"mealType" binding:"required"`
	Date           string  `json:"date"` // YYYY-MM-DD, today when empty
}

// TrackIngredient logs a consumption and returns the updated day.
func (h *Handlers) TrackIngredient(c *gin.Context) {
	var req trackIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mealType := models.MealType(req.MealType)
	if !mealType.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown meal type: " + req.MealType})
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	details, err := h.ingredients.TrackIngredientForDay(service.TrackIngredientDTO{
		IngredientName: req.IngredientName,
		Grams:          req.Grams,
		MealType:       mealType,
	}, date)
	if errors.Is(err, service.ErrIngredientNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, service.ErrInvalidWeight) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to track ingredient"})
		return
	}

	c.JSON(http.StatusOK, details)
}

// GetDailyDetails - the aggregate for a calendar day.
func (h *Handlers) GetDailyDetails(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	details, err := h.dailyRepo.Get(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load daily details"})
		return
	}
	if details == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no details for this day"})
		return
	}
	c.JSON(http.StatusOK, details)
}

// RemoveDailyDetails deletes the aggregate for a calendar day. Idempotent.
func (h *Handlers) RemoveDailyDetails(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	if err := h.dailyRepo.Remove(date); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove daily details"})
		return
	}
	c.Status(http.StatusNoContent)
}

type submitUserDataRequest struct {
	Gender        string  `json:"gender" binding:"required"`
	Age           int     `json:"age" binding:"required,gt=0"`
	HeightCm      float64 `json:"heightCm" binding:"required,gt=0"`
	WeightKg      float64 `json:"weightKg" binding:"required,gt=0"`
	ActivityLevel string  `json:"activityLevel" binding:"required"`
	Goal          string  `json:"goal" binding:"required"`
}

type submitUserDataResponse struct {
	UserData     *models.UserData            `json:"userData"`
	DailyDetails *models.DailyCalorieDetails `json:"dailyDetails"`
}

// SubmitUserData creates or overwrites the profile, fetching a fresh goal
// and seeding today's aggregate with it.
func (h *Handlers) SubmitUserData(c *gin.Context) {
	var req submitUserDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gender := models.Gender(req.Gender)
	activity := models.ActivityLevel(req.ActivityLevel)
	goal := models.Goal(req.Goal)
	if !gender.IsValid() || !activity.IsValid() || !goal.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown gender, activity level or goal"})
		return
	}

	data, details, err := h.userData.SubmitUserData(c.Request.Context(), service.SubmitUserDataDTO{
		Gender:        gender,
		Age:           req.Age,
		HeightCm:      req.HeightCm,
		WeightKg:      req.WeightKg,
		ActivityLevel: activity,
		Goal:          goal,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save user data"})
		return
	}

	c.JSON(http.StatusOK, submitUserDataResponse{UserData: data, DailyDetails: details})
}

// GetUserData - the stored profile.
func (h *Handlers) GetUserData(c *gin.Context) {
	data, err := h.userData.GetUserData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user data"})
		return
	}
	if data == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no user data stored"})
		return
	}
	c.JSON(http.StatusOK, data)
}

// RemoveUserData deletes the stored profile. Idempotent.
func (h *Handlers) RemoveUserData(c *gin.Context) {
	if err := h.userData.RemoveUserData(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove user data"})
		return
	}
	c.Status(http.StatusNoContent)
}
