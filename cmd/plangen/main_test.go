package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/marcosoliveira78/v0-personal-workout-generator/internal/plan"
	"github.com/marcosoliveira78/v0-personal-workout-generator/internal/testhelpers"
)

const testProfileJSON = `{
	"age": 30,
	"gender": "female",
	"height": 170,
	"weight": 65,
	"fitnessLevel": "beginner",
	"fitnessGoals": "weightLoss",
	"workoutsPerWeek": 3,
	"timePerWorkout": 45,
	"focusAreas": "fullBody",
	"sleepWeekday": 7,
	"sleepWeekend": 8
}`

func runPlangen(t *testing.T, args []string, input string) plan.Plan {
	t.Helper()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	var stdout bytes.Buffer
	if err := run(t.Context(), logger, args, strings.NewReader(input), &stdout); err != nil {
		t.Fatalf("run returned unexpected error: %v", err)
	}

	var p plan.Plan
	if err := json.Unmarshal(stdout.Bytes(), &p); err != nil {
		t.Fatalf("Failed to decode plan output: %v", err)
	}
	return p
}

func TestRunGeneratesPlan(t *testing.T) {
	p := runPlangen(t, nil, testProfileJSON)

	if len(p.Weeks) != plan.TotalWeeks {
		t.Fatalf("expected %d weeks, got %d", plan.TotalWeeks, len(p.Weeks))
	}
	if p.DaysPerWeek != 3 {
		t.Errorf("expected 3 training days, got %d", p.DaysPerWeek)
	}
	if p.FitnessLevel != plan.LevelBeginner {
		t.Errorf("expected beginner level, got %s", p.FitnessLevel)
	}
}

func TestRunSeedIsReproducible(t *testing.T) {
	first := runPlangen(t, []string{"-seed", "42"}, testProfileJSON)
	second := runPlangen(t, []string{"-seed", "42"}, testProfileJSON)

	ignoreID := cmpopts.IgnoreFields(plan.Plan{}, "ID")
	if diff := cmp.Diff(first, second, ignoreID); diff != "" {
		t.Errorf("seeded runs differ (-first +second):\n%s", diff)
	}
}

func TestRunRejectsMalformedProfile(t *testing.T) {
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	var stdout bytes.Buffer
	err := run(t.Context(), logger, nil, strings.NewReader(`{"age": "thirty"}`), &stdout)
	if err == nil {
		t.Fatal("expected an error for a malformed profile, got nil")
	}
	if !strings.Contains(err.Error(), "decode profile") {
		t.Errorf("expected a decode error, got %v", err)
	}
}

func TestRunRejectsUnknownFields(t *testing.T) {
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	var stdout bytes.Buffer
	err := run(t.Context(), logger, nil, strings.NewReader(`{"species": "human"}`), &stdout)
	if err == nil {
		t.Fatal("expected an error for unknown fields, got nil")
	}
}
