package plan

// Tuning bounds. Textual rep prescriptions are never adjusted.
const (
	minSets         = 2
	maxSets         = 5
	maxCompound     = 6 // set cap for the leading compound lifts on hypertrophy
	minRestSec      = 30
	maxRestSec      = 120
	maxGoalRest     = 180
	hypertrophyRest = 90
)

// tuneExercise returns a tuned copy of a catalog exercise. Deload tuning
// replaces the weekly-focus pass; otherwise the focus pass runs first and the
// goal pass second, in that order, since both touch the same fields.
func (g *generator) tuneExercise(ex Exercise, deload bool, focus WeekFocus, index int) Exercise {
	if deload {
		return tuneForDeload(ex)
	}
	return tuneForGoal(tuneForWeekFocus(ex, focus), g.profile.Goal, index)
}

// tuneForDeload reduces volume and intensity for the recovery week.
func tuneForDeload(ex Exercise) Exercise {
	ex.Sets = max(ex.Sets-1, minSets)
	if ex.Reps.Numeric() {
		ex.Reps.Count = min(ex.Reps.Count+2, 15)
	}
	if ex.RestBetweenSets > 0 {
		ex.RestBetweenSets = min(ex.RestBetweenSets+30, maxRestSec)
	}
	return ex
}

// tuneForWeekFocus applies the weekly theme adjustment.
func tuneForWeekFocus(ex Exercise, focus WeekFocus) Exercise {
	switch focus {
	case WeekFocusVolume:
		ex.Sets = min(ex.Sets+1, maxSets)
		if ex.Reps.Numeric() {
			ex.Reps.Count = min(ex.Reps.Count+2, 15)
		}
	case WeekFocusIntensity:
		if ex.Reps.Numeric() {
			ex.Reps.Count = max(ex.Reps.Count-2, 6)
		}
		if ex.RestBetweenSets > 0 {
			ex.RestBetweenSets = min(ex.RestBetweenSets+30, maxRestSec)
		}
	case WeekFocusTechnique:
		// Keep sets and reps, emphasise cadence instead.
		if ex.Tempo == "" {
			ex.Tempo = "3-1-3-0"
		}
	case WeekFocusMuscularEndurance:
		if ex.Reps.Numeric() {
			ex.Reps.Count = min(ex.Reps.Count+4, 20)
		}
		if ex.RestBetweenSets > 0 {
			ex.RestBetweenSets = max(ex.RestBetweenSets-15, minRestSec)
		}
	}
	return ex
}

// tuneForGoal applies the fitness-goal adjustment on top of the weekly one.
// index is the position of the exercise within the workout; the first two
// slots are assumed to hold compound lifts.
func tuneForGoal(ex Exercise, goal Goal, index int) Exercise {
	switch goal {
	case GoalStrength:
		if ex.Reps.Numeric() {
			ex.Reps.Count = max(ex.Reps.Count-2, 5)
		}
		ex.Sets = min(ex.Sets+1, maxSets)
		if ex.RestBetweenSets > 0 {
			ex.RestBetweenSets = min(ex.RestBetweenSets+30, maxGoalRest)
		}
	case GoalEndurance:
		if ex.Reps.Numeric() {
			ex.Reps.Count = min(ex.Reps.Count+5, 20)
		}
		if ex.RestBetweenSets > 0 {
			ex.RestBetweenSets = max(ex.RestBetweenSets-15, minRestSec)
		}
	case GoalMuscleGain:
		ex.Sets = min(ex.Sets+1, maxSets)
		if ex.Reps.Numeric() {
			// The hypertrophy sweet spot is 8-12 repetitions.
			if ex.Reps.Count < 8 {
				ex.Reps.Count = 8
			}
			if ex.Reps.Count > 12 {
				ex.Reps.Count = 12
			}
		}
		if ex.Tempo == "" {
			// Time under tension matters for hypertrophy.
			ex.Tempo = "2-1-2-0"
		}
		ex.RestBetweenSets = hypertrophyRest
		if index < 2 {
			ex.Sets = min(ex.Sets+1, maxCompound)
		}
	}
	return ex
}
