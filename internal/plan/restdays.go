package plan

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Activity-id buckets used when combining user-selected activities.
var (
	cardioActivityIDs   = []string{"walking", "cycling", "swimming", "light_elliptical", "hiking"}
	recoveryActivityIDs = []string{"stretching", "yoga", "mobility", "foam_rolling", "meditation"}
)

// similarActivityGroups are interchangeable activities that should not be
// scheduled on back-to-back rest days.
var similarActivityGroups = [][]string{
	{"walking", "hiking"},
	{"yoga", "stretching", "mobility"},
	{"cycling", "light_elliptical"},
}

// Combination formulas.
const (
	cardioComboMaxMinutes    = 60
	cardioComboPerActivity   = 20
	recoveryComboMaxMinutes  = 45
	recoveryComboPerActivity = 15
	pairingMinutes           = 40
	fallbackDurationMinutes  = 30
)

// restDayActivities fills the week's rest days with recovery activities. When
// the user declared preferences, a personalised schedule with combination
// sessions is built; otherwise defaults are drawn from the catalog.
func (g *generator) restDayActivities(restDays int, deload bool) []RestDayActivity {
	if restDays <= 0 {
		return []RestDayActivity{}
	}

	selected := g.selectedActivityIDs()
	if len(selected) == 0 {
		return g.defaultRestActivities(restDays, deload)
	}
	return g.preferredRestActivities(restDays, selected)
}

// selectedActivityIDs returns the user's selected activity ids in a stable
// order.
func (g *generator) selectedActivityIDs() []string {
	var ids []string
	for id, pref := range g.profile.RestActivities {
		if pref.Selected {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// defaultRestActivities picks catalog activities by deload state and goal.
func (g *generator) defaultRestActivities(restDays int, deload bool) []RestDayActivity {
	shuffled := make([]RestDayActivity, len(g.catalog.RestActivities))
	copy(shuffled, g.catalog.RestActivities)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	var picked []RestDayActivity
	switch {
	case deload:
		for _, a := range shuffled {
			if a.Intensity == ActivityVeryLight {
				picked = append(picked, a)
			}
		}
	case g.profile.Goal == GoalWeightLoss:
		// Favour light cardio with some length to it.
		for _, a := range shuffled {
			if a.Intensity == ActivityLight && a.Duration >= 30 {
				picked = append(picked, a)
			}
		}
	case g.profile.Goal == GoalMuscleGain:
		// Favour activities that explicitly aid recovery.
		for _, a := range shuffled {
			if a.Intensity == ActivityVeryLight && mentionsRecovery(a.Benefits) {
				picked = append(picked, a)
			}
		}
	default:
		picked = shuffled
	}

	if len(picked) > restDays {
		picked = picked[:restDays]
	}

	// Top up from the rest of the shuffled catalog when the filter came up
	// short.
	for _, a := range shuffled {
		if len(picked) >= restDays {
			break
		}
		if !containsActivity(picked, a.Name) {
			picked = append(picked, a)
		}
	}
	return picked
}

func mentionsRecovery(benefits []string) bool {
	for _, b := range benefits {
		if strings.Contains(strings.ToLower(b), "recovery") {
			return true
		}
	}
	return false
}

func containsActivity(activities []RestDayActivity, name string) bool {
	for _, a := range activities {
		if a.Name == name {
			return true
		}
	}
	return false
}

// preferredRestActivities builds a personalised rest schedule from the user's
// selected activity ids, mixing combination sessions with single activities.
func (g *generator) preferredRestActivities(restDays int, selected []string) []RestDayActivity {
	cardio := intersect(selected, cardioActivityIDs)
	recovery := intersect(selected, recoveryActivityIDs)

	activities := make([]RestDayActivity, 0, restDays)
	// usedIDs tracks which single activity filled each produced slot so the
	// similarity check can look back at the prior two days. Combination days
	// record an empty id.
	var usedIDs []string

	for day := range restDays {
		// Combinations become likelier the more activities were selected.
		if len(selected) >= 3 && g.rng.Float64() > 0.3 {
			if combo, ok := g.combinationActivity(cardio, recovery); ok {
				activities = append(activities, combo)
				usedIDs = append(usedIDs, "")
				continue
			}
		}

		activity, id, ok := g.singleActivity(day, selected, usedIDs)
		if !ok {
			// Preference references an id missing from the option catalog;
			// the slot is skipped rather than filled with a placeholder.
			continue
		}
		activities = append(activities, activity)
		usedIDs = append(usedIDs, id)
	}
	return activities
}

// combinationActivity attempts to synthesize a multi-activity session from
// the available cardio and recovery buckets.
func (g *generator) combinationActivity(cardio, recovery []string) (RestDayActivity, bool) {
	switch {
	case len(cardio) >= 2 && g.rng.Float64() > 0.5:
		return g.cardioCombo(cardio), true
	case len(recovery) >= 2:
		return g.recoveryCombo(recovery), true
	case len(cardio) >= 1 && len(recovery) >= 1:
		return g.cardioRecoveryPairing(cardio, recovery), true
	default:
		return RestDayActivity{}, false
	}
}

// cardioCombo builds a light multi-cardio session from up to three picks.
func (g *generator) cardioCombo(cardio []string) RestDayActivity {
	picks := g.shufflePick(cardio, 3)
	labels := g.optionLabels(picks)

	total := min(cardioComboMaxMinutes, cardioComboPerActivity*len(picks))
	perActivity := total / len(picks)

	name := fmt.Sprintf("Combo: %s", strings.Join(labels, " + "))
	description := "Combination of light cardio activities"
	if len(picks) >= 3 {
		name = "Light mini-triathlon"
		description = "Light mini-triathlon: a combination of low-intensity cardio activities"
	}

	return RestDayActivity{
		Name:        name,
		Description: fmt.Sprintf("%s. Do %d minutes of each activity in sequence.", description, perActivity),
		Duration:    total,
		Intensity:   ActivityLight,
		Benefits: []string{
			"Varied active recovery",
			"Light cardiovascular work",
			"Stimulus for different muscle groups",
			"Less monotony",
		},
		Notes: fmt.Sprintf(
			"Keep the intensity low in every activity. This is a recovery day, not a training day. Suggestion: %s.",
			strings.Join(labels, " -> ")),
	}
}

// recoveryCombo builds a complete recovery session from up to three picks.
func (g *generator) recoveryCombo(recovery []string) RestDayActivity {
	picks := g.shufflePick(recovery, 3)
	labels := g.optionLabels(picks)

	total := min(recoveryComboMaxMinutes, recoveryComboPerActivity*len(picks))
	perActivity := total / len(picks)

	return RestDayActivity{
		Name: "Complete recovery session",
		Description: fmt.Sprintf(
			"Combination of recovery and mobility activities. Dedicate %d minutes to each activity.", perActivity),
		Duration:  total,
		Intensity: ActivityVeryLight,
		Benefits: []string{
			"Deep muscle recovery",
			"Improved flexibility",
			"Stress reduction",
			"Preparation for upcoming workouts",
		},
		Notes: fmt.Sprintf(
			"Focus on the quality of each movement and on deep breathing. Suggested sequence: %s.",
			strings.Join(labels, " -> ")),
	}
}

// cardioRecoveryPairing builds a fixed-length cardio-then-recovery session.
func (g *generator) cardioRecoveryPairing(cardio, recovery []string) RestDayActivity {
	cardioLabel := g.optionLabel(cardio[g.rng.IntN(len(cardio))])
	recoveryLabel := g.optionLabel(recovery[g.rng.IntN(len(recovery))])

	return RestDayActivity{
		Name:        fmt.Sprintf("%s + %s", cardioLabel, recoveryLabel),
		Description: "Combination of light cardio followed by active recovery.",
		Duration:    pairingMinutes,
		Intensity:   ActivityLight,
		Benefits: []string{
			"Active recovery",
			"Improved circulation",
			"Reduced muscle tension",
			"Balance between activity and recovery",
		},
		Notes: fmt.Sprintf(
			"Start with 20-25 minutes of %s at light intensity, followed by 15-20 minutes of %s. Ideal for complete recovery.",
			cardioLabel, recoveryLabel),
	}
}

// singleActivity resolves one personalised activity for the given rest-day
// index, avoiding activities similar to those used on the prior two days.
// ok is false when the resolved id has no catalog option.
func (g *generator) singleActivity(day int, selected, usedIDs []string) (RestDayActivity, string, bool) {
	id := selected[day%len(selected)]

	if g.similarToRecent(id, usedIDs) && len(selected) > 1 {
		if alternatives := g.dissimilarAlternatives(selected, usedIDs); len(alternatives) > 0 {
			id = alternatives[g.rng.IntN(len(alternatives))]
		}
	}

	option, ok := g.catalog.ActivityOptions[id]
	if !ok {
		return RestDayActivity{}, "", false
	}
	pref := g.profile.RestActivities[id]

	duration := g.sampleDuration(pref, option)

	description := option.Description
	if option.HasDistance && pref.MinDistance != nil && pref.MaxDistance != nil {
		distance := g.sampleDistance(*pref.MinDistance, *pref.MaxDistance)
		description = fmt.Sprintf("%s (%.1f %s)", description, distance, option.Unit)
	}

	intensity := ActivityLight
	if strings.Contains(strings.ToLower(option.IntensityRange), "very light") {
		intensity = ActivityVeryLight
	}

	return RestDayActivity{
		Name:        option.Label,
		Description: description,
		Duration:    duration,
		Intensity:   intensity,
		Benefits:    option.Benefits,
		Notes: fmt.Sprintf(
			"Keep the intensity %s to guarantee proper recovery. This activity was personalised from your preferences.",
			strings.ToLower(option.IntensityRange)),
	}, id, true
}

// similarToRecent reports whether id is similar to an activity used on either
// of the two preceding rest days.
func (g *generator) similarToRecent(id string, usedIDs []string) bool {
	start := max(len(usedIDs)-2, 0)
	for _, used := range usedIDs[start:] {
		if used != "" && areSimilarActivities(id, used) {
			return true
		}
	}
	return false
}

// dissimilarAlternatives lists selected ids not similar to any already used
// activity.
func (g *generator) dissimilarAlternatives(selected, usedIDs []string) []string {
	var alternatives []string
	for _, id := range selected {
		similar := false
		for _, used := range usedIDs {
			if used != "" && areSimilarActivities(id, used) {
				similar = true
				break
			}
		}
		if !similar {
			alternatives = append(alternatives, id)
		}
	}
	return alternatives
}

// sampleDuration draws a concrete duration from the user's bounds, falling
// back to the catalog defaults and finally to a flat 30 minutes.
func (g *generator) sampleDuration(pref RestActivityPreference, option RestActivityOption) int {
	if pref.MinDuration != nil && pref.MaxDuration != nil {
		return g.sampleRange(*pref.MinDuration, *pref.MaxDuration)
	}
	if option.DefaultMinDuration != nil && option.DefaultMaxDuration != nil {
		return g.sampleRange(*option.DefaultMinDuration, *option.DefaultMaxDuration)
	}
	return fallbackDurationMinutes
}

// sampleRange draws a uniform integer in [lo, hi].
func (g *generator) sampleRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.IntN(hi-lo+1)
}

// sampleDistance draws a one-decimal distance in [lo, hi].
func (g *generator) sampleDistance(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	v := lo + g.rng.Float64()*(hi-lo)
	return math.Round(v*10) / 10
}

// shufflePick shuffles ids and keeps at most n of them.
func (g *generator) shufflePick(ids []string, n int) []string {
	shuffled := make([]string, len(ids))
	copy(shuffled, ids)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if len(shuffled) > n {
		shuffled = shuffled[:n]
	}
	return shuffled
}

// optionLabels maps activity ids to their catalog labels, passing unknown ids
// through unchanged.
func (g *generator) optionLabels(ids []string) []string {
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = g.optionLabel(id)
	}
	return labels
}

func (g *generator) optionLabel(id string) string {
	if option, ok := g.catalog.ActivityOptions[id]; ok {
		return option.Label
	}
	return id
}

// areSimilarActivities reports whether the two ids belong to the same
// similarity group.
func areSimilarActivities(a, b string) bool {
	for _, group := range similarActivityGroups {
		if slices.Contains(group, a) && slices.Contains(group, b) {
			return true
		}
	}
	return false
}

func intersect(ids, bucket []string) []string {
	var out []string
	for _, id := range ids {
		if slices.Contains(bucket, id) {
			out = append(out, id)
		}
	}
	return out
}
