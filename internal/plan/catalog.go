package plan

// Catalog bundles the read-only reference tables the generator draws from.
// The generator never mutates it; selections copy entries before tuning.
type Catalog struct {
	// Exercises keyed by focus area, regular training weeks.
	Exercises map[FocusArea][]Exercise
	// DeloadExercises keyed by focus area, reduced-volume variants for the
	// deload week.
	DeloadExercises map[FocusArea][]Exercise
	// RestActivities is the default rest-day activity pool used when the user
	// declared no preferences.
	RestActivities []RestDayActivity
	// ActivityOptions maps activity ids to their selectable option metadata.
	ActivityOptions map[string]RestActivityOption
	// GoalSupplements maps fitness goals to goal-specific supplement lists.
	GoalSupplements map[Goal][]SupplementRecommendation
	// GeneralSupplements apply regardless of goal.
	GeneralSupplements []SupplementRecommendation
}

// exercisePool returns the per-focus-area pool for the given week kind,
// falling back to the full-body pool when the focus area has no entries.
func (c Catalog) exercisePool(focus FocusArea, deload bool) []Exercise {
	pools := c.Exercises
	if deload {
		pools = c.DeloadExercises
	}
	if pool, ok := pools[focus]; ok && len(pool) > 0 {
		return pool
	}
	return pools[FocusFullBody]
}

// allExercises flattens every focus-area pool for the given week kind. It is
// used to top up a workout when the focus pool runs short.
func (c Catalog) allExercises(deload bool) []Exercise {
	pools := c.Exercises
	if deload {
		pools = c.DeloadExercises
	}
	var all []Exercise
	for _, area := range []FocusArea{FocusFullBody, FocusUpperBody, FocusLowerBody, FocusCore, FocusGlutes} {
		all = append(all, pools[area]...)
	}
	return all
}
