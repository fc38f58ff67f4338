package plan

import (
	"testing"
)

func TestWeeklyTypeMix(t *testing.T) {
	testCases := []struct {
		name        string
		focus       FocusArea
		daysPerWeek int
		wantCounts  map[FocusArea]int
	}{
		{
			name:        "Full body trains full body every day",
			focus:       FocusFullBody,
			daysPerWeek: 5,
			wantCounts:  map[FocusArea]int{FocusFullBody: 5},
		},
		{
			name:        "Upper body gets the majority of five days",
			focus:       FocusUpperBody,
			daysPerWeek: 5,
			wantCounts:  map[FocusArea]int{FocusUpperBody: 3, FocusFullBody: 1, FocusLowerBody: 1},
		},
		{
			name:        "Core focus on three days",
			focus:       FocusCore,
			daysPerWeek: 3,
			wantCounts:  map[FocusArea]int{FocusCore: 2, FocusFullBody: 1},
		},
		{
			name:        "Glutes split across glutes, lower and upper",
			focus:       FocusGlutes,
			daysPerWeek: 5,
			wantCounts:  map[FocusArea]int{FocusGlutes: 3, FocusLowerBody: 1, FocusUpperBody: 1},
		},
		{
			name:        "Single day trains the focus area",
			focus:       FocusLowerBody,
			daysPerWeek: 1,
			wantCounts:  map[FocusArea]int{FocusLowerBody: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			profile := createTestProfile()
			profile.FocusArea = tc.focus

			gen := newTestGenerator(t, profile, 1)
			types := gen.weeklyTypeMix(tc.daysPerWeek)

			if len(types) != tc.daysPerWeek {
				t.Fatalf("expected %d day types, got %d", tc.daysPerWeek, len(types))
			}

			counts := make(map[FocusArea]int)
			for _, dayType := range types {
				counts[dayType]++
			}
			for area, want := range tc.wantCounts {
				if counts[area] != want {
					t.Errorf("expected %d %s days, got %d (mix: %v)", want, area, counts[area], types)
				}
			}
			for area, got := range counts {
				if tc.wantCounts[area] == 0 {
					t.Errorf("unexpected %s day in mix %v (got %d)", area, types, got)
				}
			}
		})
	}
}

func TestInterleaveTypesAvoidsConsecutiveRepeats(t *testing.T) {
	types := []FocusArea{
		FocusUpperBody, FocusUpperBody, FocusUpperBody, FocusFullBody, FocusLowerBody,
	}
	result := interleaveTypes(types)

	if len(result) != len(types) {
		t.Fatalf("expected %d entries, got %d", len(types), len(result))
	}
	for i := 1; i < len(result); i++ {
		if result[i] == result[i-1] {
			// A repeat is only allowed when nothing else had quota left.
			remaining := make(map[FocusArea]int)
			for _, typ := range types {
				remaining[typ]++
			}
			for _, typ := range result[:i] {
				remaining[typ]--
			}
			for typ, n := range remaining {
				if typ != result[i] && n > 0 {
					t.Errorf("day %d repeats %s while %s still had quota (result: %v)",
						i, result[i], typ, result)
				}
			}
		}
	}
}

func TestFilterByLevel(t *testing.T) {
	pool := []Exercise{
		createTestExercise("easy", LevelBeginner),
		createTestExercise("medium", LevelIntermediate),
		createTestExercise("hard", LevelAdvanced),
	}

	testCases := []struct {
		name      string
		level     FitnessLevel
		wantNames []string
	}{
		{name: "Beginner", level: LevelBeginner, wantNames: []string{"easy"}},
		{name: "Intermediate", level: LevelIntermediate, wantNames: []string{"easy", "medium"}},
		{name: "Advanced", level: LevelAdvanced, wantNames: []string{"easy", "medium", "hard"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			filtered := filterByLevel(pool, tc.level)
			if len(filtered) != len(tc.wantNames) {
				t.Fatalf("expected %d exercises, got %d", len(tc.wantNames), len(filtered))
			}
			for i, want := range tc.wantNames {
				if filtered[i].Name != want {
					t.Errorf("expected exercise %q at %d, got %q", want, i, filtered[i].Name)
				}
			}
		})
	}
}

func TestSelectExercisesTopsUpShortPool(t *testing.T) {
	gen := newTestGenerator(t, createTestProfile(), 7)

	shortPool := []Exercise{
		createTestExercise("only one", LevelBeginner),
	}
	selected := gen.selectExercises(shortPool, 5, false)

	if len(selected) != 5 {
		t.Fatalf("expected 5 exercises after top-up, got %d", len(selected))
	}
	seen := make(map[string]bool)
	for _, ex := range selected {
		if seen[ex.Name] {
			t.Errorf("exercise %q selected twice", ex.Name)
		}
		seen[ex.Name] = true
	}
}

func TestTopUpPrefersExercisesWithinLevel(t *testing.T) {
	profile := createTestProfile()
	profile.FitnessLevel = LevelBeginner

	gen := newTestGenerator(t, profile, 11)

	shortPool := []Exercise{
		createTestExercise("only one", LevelBeginner),
	}

	// 21 beginner exercises are reachable (the pool entry plus 20 catalog
	// entries), so a request within that bound stays beginner-tier.
	selected := gen.selectExercises(shortPool, 5, false)
	if len(selected) != 5 {
		t.Fatalf("expected 5 exercises after top-up, got %d", len(selected))
	}
	for _, ex := range selected {
		if ex.Difficulty != LevelBeginner {
			t.Errorf("top-up picked non-beginner exercise %q (%s)", ex.Name, ex.Difficulty)
		}
	}

	// Once the beginner tier is exhausted, harder exercises fill the rest.
	selected = gen.selectExercises(shortPool, 23, false)
	if len(selected) != 23 {
		t.Fatalf("expected 23 exercises after top-up, got %d", len(selected))
	}
	harder := 0
	for _, ex := range selected {
		if ex.Difficulty != LevelBeginner {
			harder++
		}
	}
	if harder != 2 {
		t.Errorf("expected 2 non-beginner exercises once the tier ran out, got %d", harder)
	}
}

func TestWorkoutsForWeekSplitsSessionTime(t *testing.T) {
	profile := createTestProfile()
	profile.MinutesPerWorkout = 60
	profile.ExercisesPerWorkout = 5

	gen := newTestGenerator(t, profile, 8)
	workouts := gen.workoutsForWeek(1, 3, false, WeekFocusVolume)

	if len(workouts) != 3 {
		t.Fatalf("expected 3 workouts, got %d", len(workouts))
	}
	for _, workout := range workouts {
		if workout.EstimatedDuration != 60 {
			t.Errorf("workout %q: expected 60 minute duration, got %d", workout.Name, workout.EstimatedDuration)
		}
		if workout.TimePerExercise != 12 {
			t.Errorf("workout %q: expected 12 minutes per exercise, got %d", workout.Name, workout.TimePerExercise)
		}
		if len(workout.Warmup) == 0 || len(workout.Cooldown) == 0 {
			t.Errorf("workout %q: expected warmup and cooldown entries", workout.Name)
		}
	}
}

func TestWorkoutIntensity(t *testing.T) {
	testCases := []struct {
		name   string
		deload bool
		focus  WeekFocus
		want   Intensity
	}{
		{name: "Deload overrides focus", deload: true, focus: WeekFocusIntensity, want: IntensityDeload},
		{name: "Intensity week is high", focus: WeekFocusIntensity, want: IntensityHigh},
		{name: "Volume week is moderate", focus: WeekFocusVolume, want: IntensityModerate},
		{name: "Technique week is light", focus: WeekFocusTechnique, want: IntensityLight},
		{name: "Endurance week is light", focus: WeekFocusMuscularEndurance, want: IntensityLight},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := workoutIntensity(tc.deload, tc.focus); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestWorkoutTypeForGoal(t *testing.T) {
	if got := workoutTypeForGoal(GoalEndurance); got != WorkoutCardio {
		t.Errorf("expected endurance goal to train cardio, got %s", got)
	}
	for _, goal := range []Goal{GoalWeightLoss, GoalMuscleGain, GoalStrength, GoalToning} {
		if got := workoutTypeForGoal(goal); got != WorkoutStrength {
			t.Errorf("goal %s: expected strength, got %s", goal, got)
		}
	}
}
