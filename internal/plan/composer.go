package plan

import (
	"fmt"
	"math"
	"slices"

	"github.com/marcosoliveira78/v0-personal-workout-generator/internal/i18n"
)

// trainingDaySpread maps a weekly training-day count to the day-of-week slots
// (0 = Monday) used for those sessions, spreading them evenly and always
// anchoring on Monday.
var trainingDaySpread = map[int][]int{
	1: {0},
	2: {0, 3},
	3: {0, 2, 4},
	4: {0, 1, 3, 4},
	5: {0, 1, 2, 3, 4},
	6: {0, 1, 2, 3, 4, 5},
	7: {0, 1, 2, 3, 4, 5, 6},
}

var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// share of weekly sessions dedicated to the chosen focus area.
const focusAreaShare = 0.6

// workoutsForWeek composes one Workout per scheduled training day, sorted by
// day of week. An empty slice is returned when daysPerWeek is 0.
func (g *generator) workoutsForWeek(weekNumber, daysPerWeek int, deload bool, focus WeekFocus) []Workout {
	if daysPerWeek <= 0 {
		return []Workout{}
	}

	pool := g.catalog.exercisePool(g.profile.FocusArea, deload)
	filtered := filterByLevel(pool, g.profile.FitnessLevel)

	trainingDays := trainingDaySpread[daysPerWeek]
	dayTypes := g.weeklyTypeMix(daysPerWeek)

	numExercises := g.profile.ExercisesPerWorkout
	if numExercises <= 0 {
		numExercises = DefaultExercisesPerWorkout
	}
	if deload {
		numExercises = max(numExercises-DeloadExerciseReduction, MinExercisesPerWorkout)
	}

	workouts := make([]Workout, 0, daysPerWeek)
	for i := range daysPerWeek {
		workoutType := dayTypes[i]
		selected := g.selectExercises(filtered, numExercises, deload)
		for j, ex := range selected {
			selected[j] = g.tuneExercise(ex, deload, focus, j)
		}

		// The configured session length is split evenly for display purposes;
		// it never changes how many exercises are picked.
		timePerExercise := g.profile.MinutesPerWorkout / numExercises

		dayOfWeek := trainingDays[i]
		typeLabel := i18n.Label("workoutType." + string(workoutType))

		workouts = append(workouts, Workout{
			Name:               fmt.Sprintf("%s: %s", dayNames[dayOfWeek], typeLabel),
			Description:        fmt.Sprintf("%s workout - week %d (%s)", typeLabel, weekNumber, focus),
			Type:               workoutTypeForGoal(g.profile.Goal),
			TargetMuscleGroups: targetMusclesFor(workoutType),
			EstimatedDuration:  g.profile.MinutesPerWorkout,
			TimePerExercise:    timePerExercise,
			Intensity:          workoutIntensity(deload, focus),
			Warmup: []string{
				"5 minutes of light cardio (jogging in place, jumping jacks)",
				"Dynamic stretching for the main muscle groups",
				"Joint rotations (shoulders, wrists, ankles)",
			},
			Exercises: selected,
			Cooldown: []string{
				"Static stretching for the muscle groups worked",
				"Deep breathing exercises",
				"5 minutes of light walking",
			},
			Notes:     g.workoutNotes(deload, focus),
			DayOfWeek: dayOfWeek,
		})
	}

	slices.SortFunc(workouts, func(a, b Workout) int {
		return a.DayOfWeek - b.DayOfWeek
	})
	return workouts
}

// weeklyTypeMix decides which focus area each training day targets.
func (g *generator) weeklyTypeMix(daysPerWeek int) []FocusArea {
	focus := g.profile.FocusArea

	switch focus {
	case FocusFullBody:
		types := make([]FocusArea, daysPerWeek)
		for i := range types {
			types[i] = FocusFullBody
		}
		return types
	case FocusGlutes:
		// 60% glutes, 20% lower body, the remainder upper body.
		glutesDays := int(math.Ceil(float64(daysPerWeek) * focusAreaShare))
		lowerDays := int(math.Ceil(float64(daysPerWeek) * 0.2))
		upperDays := daysPerWeek - glutesDays - lowerDays

		var types []FocusArea
		for range glutesDays {
			types = append(types, FocusGlutes)
		}
		for range lowerDays {
			types = append(types, FocusLowerBody)
		}
		for range upperDays {
			types = append(types, FocusUpperBody)
		}
		return interleaveTypes(types)
	default:
		// At least 60% of the sessions on the focus area, the remainder split
		// round-robin across the other areas.
		focusDays := int(math.Ceil(float64(daysPerWeek) * focusAreaShare))
		remaining := daysPerWeek - focusDays

		var others []FocusArea
		for _, area := range []FocusArea{FocusFullBody, FocusUpperBody, FocusLowerBody, FocusCore} {
			if area != focus {
				others = append(others, area)
			}
		}

		var types []FocusArea
		for range focusDays {
			types = append(types, focus)
		}
		for i := range remaining {
			types = append(types, others[i%len(others)])
		}
		return interleaveTypes(types)
	}
}

// interleaveTypes redistributes a type sequence so the same type never lands
// on consecutive days while an alternative with remaining quota exists. It
// falls back to repeating when no alternative remains.
func interleaveTypes(types []FocusArea) []FocusArea {
	counts := make(map[FocusArea]int)
	var order []FocusArea
	for _, t := range types {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}

	result := make([]FocusArea, 0, len(types))
	remaining := len(types)
	for remaining > 0 {
		var last FocusArea
		if len(result) > 0 {
			last = result[len(result)-1]
		}

		var next FocusArea
		found := false
		for _, t := range order {
			if counts[t] > 0 && t != last {
				next = t
				found = true
				break
			}
		}
		if !found {
			for _, t := range order {
				if counts[t] > 0 {
					next = t
					break
				}
			}
		}

		result = append(result, next)
		counts[next]--
		remaining--
	}
	return result
}

// targetMusclesFor maps a workout type to its display muscle-group labels.
func targetMusclesFor(workoutType FocusArea) []string {
	switch workoutType {
	case FocusFullBody:
		return []string{"full body"}
	case FocusUpperBody:
		return []string{"chest", "back", "shoulders", "arms"}
	case FocusLowerBody:
		return []string{"quadriceps", "hamstrings", "glutes", "calves"}
	case FocusCore:
		return []string{"abdominals", "obliques", "lower back", "stabilisers"}
	case FocusGlutes:
		return []string{"glutes", "hamstrings", "quadriceps"}
	default:
		return []string{"full body"}
	}
}

// filterByLevel keeps exercises the user can perform: beginners get only
// beginner-tier entries, intermediates beginner and intermediate, advanced
// users everything.
func filterByLevel(pool []Exercise, level FitnessLevel) []Exercise {
	var filtered []Exercise
	for _, ex := range pool {
		if withinLevel(ex, level) {
			filtered = append(filtered, ex)
		}
	}
	return filtered
}

func withinLevel(ex Exercise, level FitnessLevel) bool {
	switch level {
	case LevelBeginner:
		return ex.Difficulty == LevelBeginner
	case LevelIntermediate:
		return ex.Difficulty == LevelBeginner || ex.Difficulty == LevelIntermediate
	default:
		return true
	}
}

// selectExercises shuffles the filtered pool and takes the first count
// entries, topping up from the remaining catalog when the pool runs short.
func (g *generator) selectExercises(filtered []Exercise, count int, deload bool) []Exercise {
	shuffled := make([]Exercise, len(filtered))
	copy(shuffled, filtered)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if len(shuffled) < count {
		extras := g.topUpExercises(shuffled, deload)
		shuffled = append(shuffled, extras...)
	}

	if count > len(shuffled) {
		count = len(shuffled)
	}
	selected := make([]Exercise, count)
	copy(selected, shuffled[:count])
	return selected
}

// topUpExercises draws shuffled exercises from the rest of the catalog that
// are not already selected. Entries within the user's level come first, so a
// short pool is refilled from the same tier whenever the catalog allows it;
// harder exercises are only reached once that tier is exhausted.
func (g *generator) topUpExercises(selected []Exercise, deload bool) []Exercise {
	var eligible, harder []Exercise
	for _, ex := range g.catalog.allExercises(deload) {
		if containsExercise(selected, ex.Name) {
			continue
		}
		if withinLevel(ex, g.profile.FitnessLevel) {
			eligible = append(eligible, ex)
		} else {
			harder = append(harder, ex)
		}
	}
	g.rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	g.rng.Shuffle(len(harder), func(i, j int) {
		harder[i], harder[j] = harder[j], harder[i]
	})
	return append(eligible, harder...)
}

func containsExercise(exercises []Exercise, name string) bool {
	for _, ex := range exercises {
		if ex.Name == name {
			return true
		}
	}
	return false
}

// workoutTypeForGoal labels the session type: endurance goals train cardio,
// everything else is logged as strength work.
func workoutTypeForGoal(goal Goal) WorkoutType {
	if goal == GoalEndurance {
		return WorkoutCardio
	}
	return WorkoutStrength
}

// workoutIntensity derives the intensity tag from the week theme.
func workoutIntensity(deload bool, focus WeekFocus) Intensity {
	switch {
	case deload:
		return IntensityDeload
	case focus == WeekFocusIntensity:
		return IntensityHigh
	case focus == WeekFocusVolume:
		return IntensityModerate
	default:
		return IntensityLight
	}
}

// workoutNotes builds the per-workout guidance text from the week theme and
// the profile goal.
func (g *generator) workoutNotes(deload bool, focus WeekFocus) string {
	if deload {
		return "Deload week: focus on recovery, use lighter loads and prioritise technique."
	}

	var base string
	switch focus {
	case WeekFocusVolume:
		base = "Concentrate on completing every set and repetition with good form."
	case WeekFocusIntensity:
		base = "Use heavier loads while keeping proper technique."
	case WeekFocusTechnique:
		base = "Focus on perfect execution and controlling the tempo of each repetition."
	case WeekFocusMuscularEndurance:
		base = "Minimise rest times and keep a steady pace."
	default:
		return fmt.Sprintf("Week focus: %s.", focus)
	}

	switch g.profile.Goal {
	case GoalMuscleGain:
		base += " For hypertrophy, focus on muscular contraction and time under tension."
	case GoalStrength:
		base += " For strength, concentrate on explosive movement in the concentric phase."
	case GoalEndurance:
		base += " For endurance, keep the intervals short and the pace constant."
	}
	return fmt.Sprintf("Week focus: %s. %s", focus, base)
}
