package repository

import (
	"errors"
	"time"

	"github.com/jwschwaner/calorietracker-app/internal/models"
	"github.com/jwschwaner/calorietracker-app/internal/storage"
)

const dailyDetailsKeyPrefix = "DAILY_CALORIE_DETAILS_"

// DailyDetailsKey derives the storage key for a calendar day. Only year,
// month and day take part, so every time of day maps to the same key.
func DailyDetailsKey(date time.Time) string {
	return dailyDetailsKeyPrefix + date.Format("2006-01-02")
}

type DailyDetailsRepository interface {
	Get(date time.Time) (*models.DailyCalorieDetails, error)
	Save(date time.Time, details *models.DailyCalorieDetails) error
	Remove(date time.Time) error
}

type dailyDetailsRepo struct {
	store storage.Store
}

func NewDailyDetailsRepo(store storage.Store) DailyDetailsRepository {
	return &dailyDetailsRepo{store: store}
}

// Get returns the aggregate for the date, or nil when none has been saved.
func (r *dailyDetailsRepo) Get(date time.Time) (*models.DailyCalorieDetails, error) {
	var details models.DailyCalorieDetails
	err := r.store.Get(DailyDetailsKey(date), &details)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &details, nil
}

// Save overwrites the whole aggregate for the date.
func (r *dailyDetailsRepo) Save(date time.Time, details *models.DailyCalorieDetails) error {
	return r.store.Set(DailyDetailsKey(date), details)
}

func (r *dailyDetailsRepo) Remove(date time.Time) error {
	return r.store.Remove(DailyDetailsKey(date))
}
