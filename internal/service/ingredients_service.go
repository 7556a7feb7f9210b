package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jwschwaner/calorietracker-app/internal/catalog"
	"github.com/jwschwaner/calorietracker-app/internal/models"
	"github.com/jwschwaner/calorietracker-app/internal/repository"
)

var (
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrInvalidWeight      = errors.New("weight must be greater than zero")
)

// fallbackDailyGoal seeds a day that has no aggregate yet, and backs the
// remote calculator when it fails.
const fallbackDailyGoal = 2000

// Macros holds macro amounts scaled to a concrete weight.
type Macros struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// CalculateMacrosForWeight scales an ingredient's per-100g values to the
// given weight. Linear: 100g returns the record values unchanged.
func CalculateMacrosForWeight(ing models.Ingredient, grams float64) Macros {
	factor := grams / 100
	return Macros{
		Calories: ing.Calories * factor,
		Protein:  ing.Protein * factor,
		Carbs:    ing.Carbs * factor,
		Fat:      ing.Fat * factor,
	}
}

type IngredientsService struct {
	catalog   *catalog.Catalog
	dailyRepo repository.DailyDetailsRepository
	nowFn     func() time.Time
}

func NewIngredientsService(cat *catalog.Catalog, dailyRepo repository.DailyDetailsRepository) *IngredientsService {
	return &IngredientsService{catalog: cat, dailyRepo: dailyRepo, nowFn: time.Now}
}

// AllIngredients - the full catalog in catalog order.
func (s *IngredientsService) AllIngredients() []models.Ingredient {
	return s.catalog.All()
}

// FindIngredientByName - case-insensitive exact lookup.
func (s *IngredientsService) FindIngredientByName(name string) (models.Ingredient, bool) {
	return s.catalog.FindByName(name)
}

// SearchIngredients - case-insensitive substring search.
func (s *IngredientsService) SearchIngredients(query string) []models.Ingredient {
	return s.catalog.Search(query)
}

// TrackIngredientForDay logs one consumption against the given date's
// aggregate and persists the result:
//  1. Resolves the ingredient by exact name.
//  2. Scales its macros to the entered weight.
//  3. Appends a TrackedItem with the rounded calories.
//  4. Increments the day's total and saves the whole aggregate.
//
// A zero date means today. A day with no aggregate yet gets one seeded with
// the fallback goal. Nothing is written when the ingredient cannot be
// resolved.
func (s *IngredientsService) TrackIngredientForDay(dto TrackIngredientDTO, date time.Time) (*models.DailyCalorieDetails, error) {
	if dto.Grams <= 0 {
		return nil, ErrInvalidWeight
	}
	if date.IsZero() {
		date = s.nowFn()
	}

	ingredient, ok := s.catalog.FindByName(dto.IngredientName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrIngredientNotFound, dto.IngredientName)
	}

	macros := CalculateMacrosForWeight(ingredient, dto.Grams)

	item := models.TrackedItem{
		MealType:    dto.MealType,
		Name:        ingredient.Name,
		Calories:    int(math.Round(macros.Calories)),
		WeightGrams: dto.Grams,
	}

	details, err := s.dailyRepo.Get(date)
	if err != nil {
		return nil, err
	}
	if details == nil {
		details = &models.DailyCalorieDetails{
			DailyGoal:    fallbackDailyGoal,
			DailyTotal:   0,
			TrackedItems: []models.TrackedItem{},
			Date:         date,
		}
	}

	details.TrackedItems = append(details.TrackedItems, item)
	details.DailyTotal += item.Calories

	if err := s.dailyRepo.Save(date, details); err != nil {
		return nil, err
	}
	return details, nil
}
