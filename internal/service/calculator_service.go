package service

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jwschwaner/calorietracker-app/internal/models"
	"github.com/jwschwaner/calorietracker-app/pkg/utils"
)

// DailyCalorieCalculatorService asks a remote endpoint for a recommended
// daily calorie goal. One attempt, no retry; every failure degrades to the
// fallback goal.
type DailyCalorieCalculatorService struct {
	baseURL string
	client  *http.Client
}

func NewDailyCalorieCalculatorService(baseURL string, client *http.Client) *DailyCalorieCalculatorService {
	if client == nil {
		client = http.DefaultClient
	}
	return &DailyCalorieCalculatorService{baseURL: baseURL, client: client}
}

type dailyCaloriesResponse struct {
	DailyCalories *float64 `json:"dailyCalories"`
}

// GetDailyCaloriesForUser maps the profile to query parameters and returns
// the calories recommended by the endpoint, or fallbackDailyGoal when the
// call fails, the response cannot be decoded, or the field is missing.
func (s *DailyCalorieCalculatorService) GetDailyCaloriesForUser(ctx context.Context, data models.UserData) int {
	params := url.Values{}
	params.Set("gender", string(data.Gender))
	params.Set("age", strconv.Itoa(data.Age))
	params.Set("height", strconv.FormatFloat(data.HeightCm, 'f', -1, 64))
	params.Set("weight", strconv.FormatFloat(data.WeightKg, 'f', -1, 64))
	params.Set("activityLevel", string(data.ActivityLevel))
	params.Set("goal", string(data.Goal))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		utils.Log.Error("calculator: build request: " + err.Error())
		return fallbackDailyGoal
	}

	resp, err := s.client.Do(req)
	if err != nil {
		utils.Log.Error("calculator: fetch daily calories: " + err.Error())
		return fallbackDailyGoal
	}
	defer resp.Body.Close()

	// The status code is deliberately ignored: any response that decodes to
	// a dailyCalories value is accepted, everything else falls back.
	var body dailyCaloriesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		utils.Log.Error("calculator: decode response: " + err.Error())
		return fallbackDailyGoal
	}
	if body.DailyCalories == nil {
		utils.Log.Error("calculator: response missing dailyCalories")
		return fallbackDailyGoal
	}
	return int(math.Round(*body.DailyCalories))
}
