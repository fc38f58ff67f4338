// Package plan generates multi-week workout and recovery plans from a user
// fitness profile.
package plan

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// FitnessLevel represents the user's training experience.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

// Goal represents the primary fitness goal of the plan.
type Goal string

const (
	GoalWeightLoss Goal = "weightLoss"
	GoalMuscleGain Goal = "muscleGain"
	GoalEndurance  Goal = "endurance"
	GoalStrength   Goal = "strength"
	GoalToning     Goal = "toning"
)

// FocusArea represents the primary body region the plan emphasises. It doubles
// as the per-day workout type label when composing a training week.
type FocusArea string

const (
	FocusFullBody  FocusArea = "fullBody"
	FocusUpperBody FocusArea = "upperBody"
	FocusLowerBody FocusArea = "lowerBody"
	FocusCore      FocusArea = "core"
	FocusGlutes    FocusArea = "glutes"
)

// Gender is used by the body-metrics formulas.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// WorkoutType classifies a training session.
type WorkoutType string

const (
	WorkoutStrength    WorkoutType = "strength"
	WorkoutCardio      WorkoutType = "cardio"
	WorkoutHIIT        WorkoutType = "hiit"
	WorkoutFlexibility WorkoutType = "flexibility"
	WorkoutRecovery    WorkoutType = "recovery"
)

// Intensity tags a workout with its overall effort level.
type Intensity string

const (
	IntensityLight    Intensity = "light"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
	IntensityDeload   Intensity = "deload"
)

// ActivityIntensity tags a rest-day activity.
type ActivityIntensity string

const (
	ActivityVeryLight ActivityIntensity = "very_light"
	ActivityLight     ActivityIntensity = "light"
	ActivityModerate  ActivityIntensity = "moderate"
)

// Priority classifies how important a supplement recommendation is.
type Priority string

const (
	PriorityEssential   Priority = "essential"
	PriorityRecommended Priority = "recommended"
	PriorityOptional    Priority = "optional"
)

// priorityRank orders priorities for sorting, essential first.
func priorityRank(p Priority) int {
	switch p {
	case PriorityEssential:
		return 0
	case PriorityRecommended:
		return 1
	case PriorityOptional:
		return 2
	default:
		return 3
	}
}

// Reps holds a rep prescription that is either a plain count or a textual
// instruction such as "30-60 seconds". Textual reps are never adjusted by the
// tuning passes.
type Reps struct {
	Count int
	Text  string
}

// Numeric reports whether the prescription is a plain rep count.
func (r Reps) Numeric() bool {
	return r.Text == ""
}

func (r Reps) String() string {
	if r.Numeric() {
		return strconv.Itoa(r.Count)
	}
	return r.Text
}

// MarshalJSON encodes numeric reps as a JSON number and textual reps as a
// string, matching the shape consumed by the display layer.
func (r Reps) MarshalJSON() ([]byte, error) {
	if r.Numeric() {
		return json.Marshal(r.Count)
	}
	return json.Marshal(r.Text)
}

// UnmarshalJSON accepts either a number or a string.
func (r *Reps) UnmarshalJSON(data []byte) error {
	var count int
	if err := json.Unmarshal(data, &count); err == nil {
		*r = Reps{Count: count}
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("reps must be a number or a string: %w", err)
	}
	*r = Reps{Text: text}
	return nil
}

// Exercise represents a catalog exercise or a tuned copy of one inside a
// generated workout. Catalog entries are read-only; the composer copies them
// before tuning.
type Exercise struct {
	Name                string       `json:"name"`
	DescriptionMarkdown string       `json:"description"`
	Sets                int          `json:"sets"`
	Reps                Reps         `json:"reps"`
	RestBetweenSets     int          `json:"restBetweenSets,omitempty"` // seconds, 0 = unspecified
	Difficulty          FitnessLevel `json:"difficulty"`
	TargetMuscles       []string     `json:"targetMuscles"`
	Equipment           string       `json:"equipment,omitempty"`
	Tempo               string       `json:"tempo,omitempty"`
	Tips                []string     `json:"tips,omitempty"`
}

// Workout is a single training day inside a plan week.
type Workout struct {
	Name               string      `json:"name"`
	Description        string      `json:"description"`
	Type               WorkoutType `json:"type"`
	TargetMuscleGroups []string    `json:"targetMuscleGroups"`
	EstimatedDuration  int         `json:"estimatedDuration"` // minutes
	TimePerExercise    int         `json:"timePerExercise"`   // minutes
	Intensity          Intensity   `json:"intensity"`
	Warmup             []string    `json:"warmup"`
	Exercises          []Exercise  `json:"exercises"`
	Cooldown           []string    `json:"cooldown"`
	Notes              string      `json:"notes,omitempty"`
	DayOfWeek          int         `json:"dayOfWeek"` // 0 = Monday .. 6 = Sunday
}

// RestDayActivity fills a non-training day with a recovery activity, either a
// single catalog activity or a synthesized combination of two or three.
type RestDayActivity struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Duration    int               `json:"duration"` // minutes
	Intensity   ActivityIntensity `json:"intensity"`
	Benefits    []string          `json:"benefits"`
	Notes       string            `json:"notes,omitempty"`
}

// Week is one of the nine weeks of a generated plan.
type Week struct {
	Number            int               `json:"weekNumber"`
	Focus             string            `json:"focus"`
	Description       string            `json:"description"`
	Deload            bool              `json:"isDeloadWeek"`
	Workouts          []Workout         `json:"workouts"`
	RestDays          int               `json:"restDays"`
	RestDayActivities []RestDayActivity `json:"restDayActivities"`
}

// SupplementRecommendation is a catalog supplement suggestion.
type SupplementRecommendation struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Dosage      string   `json:"dosage"`
	Timing      string   `json:"timing"`
	Benefits    []string `json:"benefits"`
	Priority    Priority `json:"priority"`
}

// BodyMetrics is a snapshot of derived body measurements for the profile.
type BodyMetrics struct {
	BMI                float64  `json:"bmi"`
	BMICategory        string   `json:"bmiCategory"`
	BasalMetabolicRate int      `json:"basalMetabolicRate"`
	DailyCalorieNeeds  int      `json:"dailyCalorieNeeds"`
	BodyFatEstimate    float64  `json:"bodyFatPercentageEstimate"`
	WaistToHipRatio    *float64 `json:"waistToHipRatio,omitempty"`
	WaistCircumference *float64 `json:"waistCircumference,omitempty"`
	HipCircumference   *float64 `json:"hipCircumference,omitempty"`
	ChestCircumference *float64 `json:"chestCircumference,omitempty"`
	ArmCircumference   *float64 `json:"armCircumference,omitempty"`
	ThighCircumference *float64 `json:"thighCircumference,omitempty"`
	CalfCircumference  *float64 `json:"calfCircumference,omitempty"`
}

// Plan is the top-level generated output. It is immutable once returned; the
// display and export collaborators only read it.
type Plan struct {
	ID                   uuid.UUID                  `json:"id"`
	Name                 string                     `json:"name"`
	Description          string                     `json:"description"`
	DaysPerWeek          int                        `json:"daysPerWeek"`
	RestDays             int                        `json:"restDays"`
	FocusArea            string                     `json:"focusArea"`
	FitnessLevel         FitnessLevel               `json:"fitnessLevel"`
	TotalWeeks           int                        `json:"totalWeeks"`
	CurrentWeek          int                        `json:"currentWeek"`
	Weeks                []Week                     `json:"weeks"`
	BodyMetrics          BodyMetrics                `json:"bodyMetrics"`
	Supplements          []SupplementRecommendation `json:"supplementRecommendations"`
	SleepRecommendations []string                   `json:"sleepRecommendations"`
	Notes                string                     `json:"notes"`
}

// RestActivityPreference captures the user's interest in one rest-day
// activity, optionally bounded by duration and distance ranges.
type RestActivityPreference struct {
	Selected    bool     `json:"selected"`
	MinDuration *int     `json:"minDuration,omitempty"` // minutes
	MaxDuration *int     `json:"maxDuration,omitempty"`
	MinDistance *float64 `json:"minDistance,omitempty"`
	MaxDistance *float64 `json:"maxDistance,omitempty"`
}

// Profile is the validated input for a generation run. Numeric range
// validation happens in the form layer before the engine is invoked.
type Profile struct {
	Age                 int          `json:"age"`
	Gender              Gender       `json:"gender"`
	HeightCm            float64      `json:"height"`
	WeightKg            float64      `json:"weight"`
	FitnessLevel        FitnessLevel `json:"fitnessLevel"`
	Goal                Goal         `json:"fitnessGoals"`
	WorkoutsPerWeek     int          `json:"workoutsPerWeek"`
	MinutesPerWorkout   int          `json:"timePerWorkout"`
	ExercisesPerWorkout int          `json:"exercisesPerWorkout,omitempty"` // 0 = default 5
	FocusArea           FocusArea    `json:"focusAreas"`
	SleepWeekdayHours   float64      `json:"sleepWeekday"`
	SleepWeekendHours   float64      `json:"sleepWeekend"`
	Supplements         []string     `json:"supplements,omitempty"`

	RestActivities map[string]RestActivityPreference `json:"restActivities,omitempty"`

	WaistCircumference *float64 `json:"waistCircumference,omitempty"`
	HipCircumference   *float64 `json:"hipCircumference,omitempty"`
	ChestCircumference *float64 `json:"chestCircumference,omitempty"`
	ArmCircumference   *float64 `json:"armCircumference,omitempty"`
	ThighCircumference *float64 `json:"thighCircumference,omitempty"`
	CalfCircumference  *float64 `json:"calfCircumference,omitempty"`
}

// RestActivityOption is a catalog entry describing a selectable rest-day
// activity together with its default duration and distance bounds.
type RestActivityOption struct {
	ID                 string   `json:"id"`
	Label              string   `json:"label"`
	Description        string   `json:"description"`
	HasDuration        bool     `json:"hasDuration"`
	HasDistance        bool     `json:"hasDistance"`
	DefaultMinDuration *int     `json:"defaultMinDuration,omitempty"`
	DefaultMaxDuration *int     `json:"defaultMaxDuration,omitempty"`
	DefaultMinDistance *float64 `json:"defaultMinDistance,omitempty"`
	DefaultMaxDistance *float64 `json:"defaultMaxDistance,omitempty"`
	Unit               string   `json:"unit,omitempty"`
	IntensityRange     string   `json:"intensityRange"`
	Benefits           []string `json:"benefits"`
}
