package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/marcosoliveira78/v0-personal-workout-generator/internal/plan"
)

// sessionKeyPlan stores the latest generated plan as JSON in the session.
const sessionKeyPlan = "plan"

// planCreatePOST generates a plan from the submitted profile, stores it in
// the session, and returns it.
func (app *application) planCreatePOST(w http.ResponseWriter, r *http.Request) {
	var profile plan.Profile
	if err := readJSON(r, &profile); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validateProfile(profile); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	generated, err := app.planService.GeneratePlan(r.Context(), profile)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("generate plan: %w", err))
		return
	}

	payload, err := json.Marshal(generated)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("marshal plan: %w", err))
		return
	}
	app.sessionManager.Put(r.Context(), sessionKeyPlan, payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(payload)
}

// planGET returns the plan stored in the session, if any.
func (app *application) planGET(w http.ResponseWriter, r *http.Request) {
	payload := app.sessionManager.GetBytes(r.Context(), sessionKeyPlan)
	if len(payload) == 0 {
		http.Error(w, "no plan generated yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(payload)
}

// restActivityOptionsGET lists the selectable rest-day activities for
// building the preferences form.
func (app *application) restActivityOptionsGET(w http.ResponseWriter, r *http.Request) {
	options, err := app.planService.ActivityOptions(r.Context())
	if err != nil {
		app.serverError(w, r, fmt.Errorf("activity options: %w", err))
		return
	}
	app.writeJSON(w, r, http.StatusOK, options)
}

// sessionPlan decodes the plan stored in the session.
func (app *application) sessionPlan(r *http.Request) (plan.Plan, bool, error) {
	payload := app.sessionManager.GetBytes(r.Context(), sessionKeyPlan)
	if len(payload) == 0 {
		return plan.Plan{}, false, nil
	}
	var p plan.Plan
	if err := json.Unmarshal(payload, &p); err != nil {
		return plan.Plan{}, false, fmt.Errorf("unmarshal session plan: %w", err)
	}
	return p, true, nil
}

func validateProfile(p plan.Profile) error {
	var problems []string

	if p.Age < 10 || p.Age > 120 {
		problems = append(problems, "age must be between 10 and 120")
	}
	if p.HeightCm < 100 || p.HeightCm > 250 {
		problems = append(problems, "height must be between 100 and 250 cm")
	}
	if p.WeightKg < 30 || p.WeightKg > 300 {
		problems = append(problems, "weight must be between 30 and 300 kg")
	}
	if p.WorkoutsPerWeek < 1 || p.WorkoutsPerWeek > 7 {
		problems = append(problems, "workoutsPerWeek must be between 1 and 7")
	}
	if p.MinutesPerWorkout < 15 || p.MinutesPerWorkout > 180 {
		problems = append(problems, "timePerWorkout must be between 15 and 180 minutes")
	}
	if p.ExercisesPerWorkout != 0 && (p.ExercisesPerWorkout < 3 || p.ExercisesPerWorkout > 10) {
		problems = append(problems, "exercisesPerWorkout must be between 3 and 10")
	}
	if p.SleepWeekdayHours < 0 || p.SleepWeekdayHours > 24 ||
		p.SleepWeekendHours < 0 || p.SleepWeekendHours > 24 {
		problems = append(problems, "sleep hours must be between 0 and 24")
	}

	switch p.FitnessLevel {
	case plan.LevelBeginner, plan.LevelIntermediate, plan.LevelAdvanced:
	default:
		problems = append(problems, "unknown fitnessLevel")
	}
	switch p.Goal {
	case plan.GoalWeightLoss, plan.GoalMuscleGain, plan.GoalEndurance, plan.GoalStrength, plan.GoalToning:
	default:
		problems = append(problems, "unknown fitnessGoals")
	}
	switch p.FocusArea {
	case plan.FocusFullBody, plan.FocusUpperBody, plan.FocusLowerBody, plan.FocusCore, plan.FocusGlutes:
	default:
		problems = append(problems, "unknown focusAreas")
	}
	switch p.Gender {
	case plan.GenderMale, plan.GenderFemale, plan.GenderOther:
	default:
		problems = append(problems, "unknown gender")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid profile: %s", strings.Join(problems, "; "))
	}
	return nil
}
