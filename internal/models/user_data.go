package models

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "veryActive"
)

func (a ActivityLevel) IsValid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	}
	return false
}

type Goal string

const (
	GoalLoseWeight     Goal = "loseWeight"
	GoalMaintainWeight Goal = "maintainWeight"
	GoalGainWeight     Goal = "gainWeight"
)

func (g Goal) IsValid() bool {
	switch g {
	case GoalLoseWeight, GoalMaintainWeight, GoalGainWeight:
		return true
	}
	return false
}

// UserData is the single on-device profile. CurrentDailyCalorieGoal is set
// once the remote calculator has produced a recommendation.
type UserData struct {
	Gender                  Gender        `json:"gender"`
	Age                     int           `json:"age"`
	HeightCm                float64       `json:"heightCm"`
	WeightKg                float64       `json:"weightKg"`
	ActivityLevel           ActivityLevel `json:"activityLevel"`
	Goal                    Goal          `json:"goal"`
	CurrentDailyCalorieGoal *int          `json:"currentDailyCalorieGoal,omitempty"`
}
