package i18n

// Language represents a supported language.
type Language string

const (
	// English is the English language.
	English Language = "en"
	// Portuguese is the Portuguese language.
	Portuguese Language = "pt"
)

// DefaultLanguage is the fallback language.
const DefaultLanguage = Language(English)

// translations maps language codes to translation keys and their values.
var translations = map[Language]map[string]string{
	English: {
		"focus.fullBody":        "Full body",
		"focus.upperBody":       "Upper body",
		"focus.lowerBody":       "Lower body",
		"focus.core":            "Core",
		"focus.glutes":          "Glutes",
		"workoutType.fullBody":  "Full body",
		"workoutType.upperBody": "Upper body",
		"workoutType.lowerBody": "Lower body",
		"workoutType.core":      "Core",
		"workoutType.glutes":    "Glutes",
		"level.beginner":        "Beginner",
		"level.intermediate":    "Intermediate",
		"level.advanced":        "Advanced",
		"goal.weightLoss":       "Weight loss",
		"goal.muscleGain":       "Muscle gain",
		"goal.endurance":        "Endurance",
		"goal.strength":         "Strength",
		"goal.toning":           "Toning",
		"intensity.light":       "Light",
		"intensity.moderate":    "Moderate",
		"intensity.high":        "High",
		"intensity.deload":      "Deload",
		"priority.essential":    "Essential",
		"priority.recommended":  "Recommended",
		"priority.optional":     "Optional",
	},
	Portuguese: {
		"focus.fullBody":        "Corpo inteiro",
		"focus.upperBody":       "Parte superior",
		"focus.lowerBody":       "Parte inferior",
		"focus.core":            "Core",
		"focus.glutes":          "Glúteos",
		"workoutType.fullBody":  "Corpo inteiro",
		"workoutType.upperBody": "Parte superior",
		"workoutType.lowerBody": "Parte inferior",
		"workoutType.core":      "Core",
		"workoutType.glutes":    "Glúteos",
		"level.beginner":        "Iniciante",
		"level.intermediate":    "Intermédio",
		"level.advanced":        "Avançado",
		"goal.weightLoss":       "Perda de peso",
		"goal.muscleGain":       "Ganho de massa muscular",
		"goal.endurance":        "Resistência",
		"goal.strength":         "Força",
		"goal.toning":           "Tonificação",
		"intensity.light":       "Leve",
		"intensity.moderate":    "Moderada",
		"intensity.high":        "Alta",
		"intensity.deload":      "Deload",
		"priority.essential":    "Essencial",
		"priority.recommended":  "Recomendado",
		"priority.optional":     "Opcional",
	},
}

// SupportedLanguages returns a list of all supported languages.
func SupportedLanguages() []Language {
	return []Language{English, Portuguese}
}

// IsSupported checks if a language is supported.
func IsSupported(lang Language) bool {
	_, ok := translations[lang]
	return ok
}

// Translate returns the translation for the given key in the specified language.
// If the key is not found, it falls back to the default language.
// If still not found, it returns the key itself.
func Translate(lang Language, key string) string {
	// Try the requested language.
	if langTranslations, ok := translations[lang]; ok {
		if translation, ok := langTranslations[key]; ok {
			return translation
		}
	}

	// Fallback to default language.
	if lang != DefaultLanguage {
		if langTranslations, ok := translations[DefaultLanguage]; ok {
			if translation, ok := langTranslations[key]; ok {
				return translation
			}
		}
	}

	// Return the key itself if no translation found.
	return key
}

// Label translates a key in the default language. It is the shorthand used by
// the plan engine for display labels.
func Label(key string) string {
	return Translate(DefaultLanguage, key)
}
