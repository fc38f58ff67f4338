package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marcosoliveira78/v0-personal-workout-generator/internal/plan"
)

func newTestApplication() *application {
	return &application{ //nolint:exhaustruct // this is a test
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func Test_secureHeaders(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	secureHeaders(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	wantHeaders := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "deny",
		"Referrer-Policy":        "origin-when-cross-origin",
	}
	for header, want := range wantHeaders {
		if got := w.Header().Get(header); got != want {
			t.Errorf("header %s: expected %q, got %q", header, want, got)
		}
	}
	if got := w.Header().Get("Content-Security-Policy"); got == "" {
		t.Error("expected a Content-Security-Policy header")
	}
}

func Test_noCache(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	noCache(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := w.Header().Get("Cache-Control"); got != "no-cache, no-store, must-revalidate" {
		t.Errorf("unexpected Cache-Control header: %q", got)
	}
}

func Test_application_recoverPanic(t *testing.T) {
	app := newTestApplication()

	next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic("something broke")
	})

	w := httptest.NewRecorder()
	app.recoverPanic(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500 after panic, got %d", w.Code)
	}
}

func Test_application_logAndTraceRequest_statusCapture(t *testing.T) {
	app := newTestApplication()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	app.logAndTraceRequest(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusTeapot {
		t.Errorf("expected the wrapped status to pass through, got %d", w.Code)
	}
}

func Test_validateProfile(t *testing.T) {
	validProfile := func() plan.Profile {
		return plan.Profile{
			Age:                 30,
			Gender:              plan.GenderMale,
			HeightCm:            180,
			WeightKg:            80,
			FitnessLevel:        plan.LevelIntermediate,
			Goal:                plan.GoalMuscleGain,
			WorkoutsPerWeek:     4,
			MinutesPerWorkout:   60,
			ExercisesPerWorkout: 5,
			FocusArea:           plan.FocusFullBody,
			SleepWeekdayHours:   7,
			SleepWeekendHours:   8,
		}
	}

	testCases := []struct {
		name    string
		mutate  func(p *plan.Profile)
		wantErr bool
	}{
		{name: "Valid profile", mutate: func(*plan.Profile) {}, wantErr: false},
		{name: "Age too low", mutate: func(p *plan.Profile) { p.Age = 5 }, wantErr: true},
		{name: "Too many workouts", mutate: func(p *plan.Profile) { p.WorkoutsPerWeek = 9 }, wantErr: true},
		{name: "Workout too short", mutate: func(p *plan.Profile) { p.MinutesPerWorkout = 5 }, wantErr: true},
		{name: "Unknown goal", mutate: func(p *plan.Profile) { p.Goal = "immortality" }, wantErr: true},
		{name: "Unknown focus area", mutate: func(p *plan.Profile) { p.FocusArea = "wings" }, wantErr: true},
		{name: "Exercise count unset is allowed", mutate: func(p *plan.Profile) { p.ExercisesPerWorkout = 0 }, wantErr: false},
		{name: "Exercise count out of range", mutate: func(p *plan.Profile) { p.ExercisesPerWorkout = 15 }, wantErr: true},
		{name: "Sleep hours out of range", mutate: func(p *plan.Profile) { p.SleepWeekdayHours = 30 }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			profile := validProfile()
			tc.mutate(&profile)

			err := validateProfile(profile)
			if tc.wantErr && err == nil {
				t.Error("expected a validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("expected no validation error, got %v", err)
			}
		})
	}
}
