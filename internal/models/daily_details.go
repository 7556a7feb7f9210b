package models

import "time"

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

func (m MealType) IsValid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// TrackedItem is one logged consumption event. Items are append-only: once
// added to a day they are never edited or removed.
type TrackedItem struct {
	MealType    MealType `json:"mealType"`
	Name        string   `json:"name"`
	Calories    int      `json:"calories"`
	WeightGrams float64  `json:"weightGrams"`
}

// DailyCalorieDetails is the per-day aggregate: the calorie goal, the running
// total and every item logged that day, in logging order. DailyTotal equals
// the sum of Calories over TrackedItems.
type DailyCalorieDetails struct {
	DailyGoal    int           `json:"dailyGoal"`
	DailyTotal   int           `json:"dailyTotal"`
	TrackedItems []TrackedItem `json:"trackedItems"`
	Date         time.Time     `json:"date"`
}
