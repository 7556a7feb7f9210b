package service

import (
	"context"
	"time"

	"github.com/jwschwaner/calorietracker-app/internal/models"
	"github.com/jwschwaner/calorietracker-app/internal/repository"
)

type UserDataService struct {
	userRepo   repository.UserDataRepository
	dailyRepo  repository.DailyDetailsRepository
	calculator *DailyCalorieCalculatorService
	nowFn      func() time.Time
}

func NewUserDataService(
	userRepo repository.UserDataRepository,
	dailyRepo repository.DailyDetailsRepository,
	calculator *DailyCalorieCalculatorService,
) *UserDataService {
	return &UserDataService{
		userRepo:   userRepo,
		dailyRepo:  dailyRepo,
		calculator: calculator,
		nowFn:      time.Now,
	}
}

// SubmitUserData handles a profile form submission:
//  1. Fetch the recommended daily calories for the profile.
//  2. Store the profile with the new goal.
//  3. Create today's aggregate with that goal, no items yet.
func (s *UserDataService) SubmitUserData(ctx context.Context, dto SubmitUserDataDTO) (*models.UserData, *models.DailyCalorieDetails, error) {
	data := models.UserData{
		Gender:        dto.Gender,
		Age:           dto.Age,
		HeightCm:      dto.HeightCm,
		WeightKg:      dto.WeightKg,
		ActivityLevel: dto.ActivityLevel,
		Goal:          dto.Goal,
	}

	dailyCalories := s.calculator.GetDailyCaloriesForUser(ctx, data)
	data.CurrentDailyCalorieGoal = &dailyCalories

	if err := s.userRepo.Save(&data); err != nil {
		return nil, nil, err
	}

	today := s.nowFn()
	details := &models.DailyCalorieDetails{
		DailyGoal:    dailyCalories,
		DailyTotal:   0,
		TrackedItems: []models.TrackedItem{},
		Date:         today,
	}
	if err := s.dailyRepo.Save(today, details); err != nil {
		return nil, nil, err
	}

	return &data, details, nil
}

// GetUserData - the stored profile, nil when none exists.
func (s *UserDataService) GetUserData() (*models.UserData, error) {
	return s.userRepo.Get()
}

// RemoveUserData - delete the stored profile.
func (s *UserDataService) RemoveUserData() error {
	return s.userRepo.Remove()
}
