package models

// BroadcastSender is the transport's pseudo-sender for status broadcasts.
// Messages from it are never actionable.
const BroadcastSender = "status@broadcast"

type Goal string

const (
	GoalLoseWeight     Goal = "Lose Weight"
	GoalMaintainWeight Goal = "Maintain Weight"
	GoalGainWeight     Goal = "Gain Weight"
)

// Goals is ordered to match the 1-based selection in the /goal step.
var Goals = []Goal{GoalLoseWeight, GoalMaintainWeight, GoalGainWeight}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "Sedentary"
	ActivityLight     ActivityLevel = "Lightly Active"
	ActivityModerate  ActivityLevel = "Moderately Active"
	ActivityVery      ActivityLevel = "Very Active"
	ActivityExtra     ActivityLevel = "Extra Active"
)

// ActivityLevels is ordered to match the 1-based selection in the /activity step.
var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityVery,
	ActivityExtra,
}

// NutrientRecord holds one food entry or a running daily total.
type NutrientRecord struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Fiber    float64 `json:"fiber"`
}

func (r NutrientRecord) IsZero() bool {
	return r.Calories == 0 && r.Protein == 0 && r.Fat == 0 && r.Carbs == 0 && r.Fiber == 0
}

// MacroTargets are the daily macro recommendations derived from target calories.
type MacroTargets struct {
	Protein int `json:"protein"`
	Fat     int `json:"fat"`
	Carbs   int `json:"carbs"`
	Fiber   int `json:"fiber"`
}

// UserProfile is the per-user conversation state: onboarding answers, computed
// targets, the daily intake ledger, and any entry pending confirmation.
type UserProfile struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`

	// Step indexes the onboarding sequence; equal to the number of steps once
	// onboarding is complete.
	Step     int           `json:"step"`
	Age      int           `json:"age"`
	Height   int           `json:"height"`
	Weight   float64       `json:"weight"`
	Goal     Goal          `json:"goal"`
	Gender   Gender        `json:"gender"`
	Activity ActivityLevel `json:"activity"`

	TargetCalories int            `json:"target_calories"`
	DailyIntake    NutrientRecord `json:"daily_intake"`

	AwaitingConfirmation bool           `json:"awaiting_confirmation"`
	LastFood             NutrientRecord `json:"last_food"`
	LastFoodName         string         `json:"last_food_name"`
	LastFoodDescription  string         `json:"last_food_description"`
}
