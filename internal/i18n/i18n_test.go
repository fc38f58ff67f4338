package i18n_test

import (
	"testing"

	"github.com/marcosoliveira78/v0-personal-workout-generator/internal/i18n"
)

func TestTranslate(t *testing.T) {
	testCases := []struct {
		name string
		lang i18n.Language
		key  string
		want string
	}{
		{name: "English key", lang: i18n.English, key: "focus.fullBody", want: "Full body"},
		{name: "Portuguese key", lang: i18n.Portuguese, key: "focus.glutes", want: "Glúteos"},
		{name: "Unknown key passes through", lang: i18n.English, key: "focus.wings", want: "focus.wings"},
		{name: "Unknown language falls back to English", lang: i18n.Language("fi"), key: "goal.strength", want: "Strength"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := i18n.Translate(tc.lang, tc.key); got != tc.want {
				t.Errorf("Translate(%q, %q) = %q, want %q", tc.lang, tc.key, got, tc.want)
			}
		})
	}
}

func TestLabelUsesDefaultLanguage(t *testing.T) {
	if got := i18n.Label("level.intermediate"); got != "Intermediate" {
		t.Errorf("Label(level.intermediate) = %q, want Intermediate", got)
	}
}

func TestEveryKeyTranslatedInAllLanguages(t *testing.T) {
	keys := []string{
		"focus.fullBody", "focus.upperBody", "focus.lowerBody", "focus.core", "focus.glutes",
		"workoutType.fullBody", "workoutType.upperBody", "workoutType.lowerBody",
		"workoutType.core", "workoutType.glutes",
		"level.beginner", "level.intermediate", "level.advanced",
		"goal.weightLoss", "goal.muscleGain", "goal.endurance", "goal.strength", "goal.toning",
		"intensity.light", "intensity.moderate", "intensity.high", "intensity.deload",
		"priority.essential", "priority.recommended", "priority.optional",
	}
	for _, lang := range i18n.SupportedLanguages() {
		if !i18n.IsSupported(lang) {
			t.Errorf("language %q reported unsupported", lang)
		}
		for _, key := range keys {
			if got := i18n.Translate(lang, key); got == key {
				t.Errorf("key %q has no %q translation", key, lang)
			}
		}
	}
}
