package plan

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/marcosoliveira78/v0-personal-workout-generator/internal/i18n"
)

// Plan shape constants.
const (
	// TotalWeeks is the fixed plan length: eight training weeks plus one
	// deload week.
	TotalWeeks = 9
	// DeloadWeekNumber is the single deload week.
	DeloadWeekNumber = 9
	// MaxTrainingDaysPerWeek caps the weekly training frequency.
	MaxTrainingDaysPerWeek = 6
	// DefaultExercisesPerWorkout is used when the profile leaves the exercise
	// count unspecified.
	DefaultExercisesPerWorkout = 5
	// DeloadExerciseReduction is subtracted from the exercise count during the
	// deload week, down to MinExercisesPerWorkout.
	DeloadExerciseReduction = 2
	// MinExercisesPerWorkout is the floor for the deload reduction.
	MinExercisesPerWorkout = 3
)

// WeekFocus is the rotating thematic focus of a training week.
type WeekFocus string

const (
	WeekFocusVolume            WeekFocus = "Volume"
	WeekFocusIntensity         WeekFocus = "Intensity"
	WeekFocusTechnique         WeekFocus = "Technique"
	WeekFocusMuscularEndurance WeekFocus = "Muscular Endurance"
	WeekFocusRecovery          WeekFocus = "Recovery"
)

// weekFocusCycle is the 4-phase rotation applied to weeks 1-8 by
// (weekNumber-1) mod 4.
var weekFocusCycle = [4]WeekFocus{
	WeekFocusVolume,
	WeekFocusIntensity,
	WeekFocusTechnique,
	WeekFocusMuscularEndurance,
}

var weekFocusDescriptions = map[WeekFocus]string{
	WeekFocusVolume:            "Focus on training volume with moderate sets and repetitions.",
	WeekFocusIntensity:         "Focus on intensity with heavier loads and fewer repetitions.",
	WeekFocusTechnique:         "Focus on technique and movement control with specific tempos.",
	WeekFocusMuscularEndurance: "Focus on muscular endurance with more repetitions and less rest.",
	WeekFocusRecovery:          "Recovery week with reduced volume and intensity to allow adaptation and recovery.",
}

// generator produces a complete workout plan for one profile.
type generator struct {
	profile Profile
	catalog Catalog
	rng     *rand.Rand
}

// newGenerator constructs a plan generator. A nil rng falls back to a
// system-seeded source; tests inject a deterministic one.
func newGenerator(profile Profile, catalog Catalog, rng *rand.Rand) (*generator, error) {
	if err := validateCatalog(catalog); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &generator{
		profile: profile,
		catalog: catalog,
		rng:     rng,
	}, nil
}

// validateCatalog ensures the generator has exercises to draw from.
func validateCatalog(catalog Catalog) error {
	if len(catalog.Exercises[FocusFullBody]) == 0 {
		return errors.New("exercise catalog must contain a full-body pool")
	}
	if len(catalog.DeloadExercises[FocusFullBody]) == 0 {
		return errors.New("exercise catalog must contain a full-body deload pool")
	}
	return nil
}

// Generate runs the whole pipeline: body metrics, nine planned weeks,
// supplement recommendations, sleep advice, and the assembled plan record.
func (g *generator) Generate() Plan {
	metrics := CalculateBodyMetrics(g.profile)

	daysPerWeek := min(g.profile.WorkoutsPerWeek, MaxTrainingDaysPerWeek)
	restDays := 7 - daysPerWeek

	weeks := make([]Week, 0, TotalWeeks)
	for weekNumber := 1; weekNumber <= TotalWeeks; weekNumber++ {
		weeks = append(weeks, g.planWeek(weekNumber, daysPerWeek, restDays))
	}

	focusLabel := i18n.Label("focus." + string(g.profile.FocusArea))
	levelLabel := i18n.Label("level." + string(g.profile.FitnessLevel))
	goalLabel := i18n.Label("goal." + string(g.profile.Goal))

	return Plan{
		ID:   uuid.New(),
		Name: fmt.Sprintf("%s %s plan - 9 weeks", focusLabel, levelLabel),
		Description: fmt.Sprintf(
			"A 9-week workout plan (8 weeks + 1 deload) focused on %s for %s.",
			focusLabel, goalLabel),
		DaysPerWeek:          daysPerWeek,
		RestDays:             restDays,
		FocusArea:            focusLabel,
		FitnessLevel:         g.profile.FitnessLevel,
		TotalWeeks:           TotalWeeks,
		CurrentWeek:          1,
		Weeks:                weeks,
		BodyMetrics:          metrics,
		Supplements:          g.recommendSupplements(),
		SleepRecommendations: g.sleepRecommendations(),
		Notes: "This plan varies volume and intensity across the weeks, with a " +
			"strategically placed deload week to maximise recovery and results. " +
			"Adjust loads as needed to keep the challenge appropriate. Do not " +
			"neglect the rest days - they are essential for your recovery and progress.",
	}
}

// planWeek builds one week: its focus theme, training-day workouts, and
// rest-day activities.
func (g *generator) planWeek(weekNumber, daysPerWeek, restDays int) Week {
	deload := weekNumber == DeloadWeekNumber

	focus := WeekFocusRecovery
	if !deload {
		focus = weekFocusCycle[(weekNumber-1)%4]
	}

	return Week{
		Number:            weekNumber,
		Focus:             string(focus),
		Description:       weekFocusDescriptions[focus],
		Deload:            deload,
		Workouts:          g.workoutsForWeek(weekNumber, daysPerWeek, deload, focus),
		RestDays:          restDays,
		RestDayActivities: g.restDayActivities(restDays, deload),
	}
}
