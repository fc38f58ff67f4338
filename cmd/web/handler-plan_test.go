package main

import (
	"net/http"
	"strings"
	"testing"

	"github.com/marcosoliveira78/v0-personal-workout-generator/internal/e2etest"
	"github.com/marcosoliveira78/v0-personal-workout-generator/internal/plan"
	"github.com/marcosoliveira78/v0-personal-workout-generator/internal/testhelpers"
)

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "WORKOUTGEN_SQLITE_URL":
		return ":memory:", true
	case "WORKOUTGEN_ADDR":
		return "localhost:0", true
	default:
		return "", false
	}
}

func testProfileRequest() map[string]any {
	return map[string]any{
		"age":                 30,
		"gender":              "male",
		"height":              180,
		"weight":              80,
		"fitnessLevel":        "intermediate",
		"fitnessGoals":        "muscleGain",
		"workoutsPerWeek":     4,
		"timePerWorkout":      60,
		"exercisesPerWorkout": 5,
		"focusAreas":          "fullBody",
		"sleepWeekday":        7,
		"sleepWeekend":        8,
	}
}

func Test_application_plan(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	t.Run("No plan before generation", func(t *testing.T) {
		resp, err := client.Get(ctx, "/api/plan")
		if err != nil {
			t.Fatalf("Failed to get plan: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", resp.StatusCode)
		}
	})

	t.Run("Generate plan", func(t *testing.T) {
		resp, err := client.PostJSON(ctx, "/api/plan", testProfileRequest())
		if err != nil {
			t.Fatalf("Failed to post profile: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected status 201, got %d", resp.StatusCode)
		}
	})

	t.Run("Fetch generated plan from session", func(t *testing.T) {
		var p plan.Plan
		if err := client.GetJSON(ctx, "/api/plan", &p); err != nil {
			t.Fatalf("Failed to get plan: %v", err)
		}

		if p.TotalWeeks != plan.TotalWeeks {
			t.Errorf("expected %d total weeks, got %d", plan.TotalWeeks, p.TotalWeeks)
		}
		if len(p.Weeks) != plan.TotalWeeks {
			t.Fatalf("expected %d weeks, got %d", plan.TotalWeeks, len(p.Weeks))
		}
		if !p.Weeks[plan.DeloadWeekNumber-1].Deload {
			t.Errorf("expected week %d to be the deload week", plan.DeloadWeekNumber)
		}
		if p.DaysPerWeek != 4 {
			t.Errorf("expected 4 training days, got %d", p.DaysPerWeek)
		}
		for _, workout := range p.Weeks[0].Workouts {
			if len(workout.Exercises) != 5 {
				t.Errorf("workout %q: expected 5 exercises, got %d", workout.Name, len(workout.Exercises))
			}
		}
	})

	t.Run("Invalid profile is rejected", func(t *testing.T) {
		invalid := testProfileRequest()
		invalid["workoutsPerWeek"] = 12

		resp, err := client.PostJSON(ctx, "/api/plan", invalid)
		if err != nil {
			t.Fatalf("Failed to post profile: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusUnprocessableEntity {
			t.Errorf("expected status 422, got %d", resp.StatusCode)
		}
	})

	t.Run("Unknown fields are rejected", func(t *testing.T) {
		invalid := testProfileRequest()
		invalid["favouriteColour"] = "purple"

		resp, err := client.PostJSON(ctx, "/api/plan", invalid)
		if err != nil {
			t.Fatalf("Failed to post profile: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", resp.StatusCode)
		}
	})
}

func Test_application_restActivityOptions(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	var options map[string]plan.RestActivityOption
	if err := server.Client().GetJSON(ctx, "/api/rest-activities", &options); err != nil {
		t.Fatalf("Failed to get rest activities: %v", err)
	}

	for _, id := range []string{"walking", "yoga", "swimming", "meditation"} {
		option, ok := options[id]
		if !ok {
			t.Errorf("expected option %q in the catalog", id)
			continue
		}
		if option.Label == "" || option.Description == "" {
			t.Errorf("option %q is missing display fields", id)
		}
	}
}

func Test_application_healthy(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	resp, err := server.Client().Get(ctx, "/api/healthy")
	if err != nil {
		t.Fatalf("Failed to get health endpoint: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); !strings.Contains(got, "application/json") {
		t.Errorf("expected JSON content type, got %q", got)
	}
}
