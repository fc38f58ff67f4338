package plan

// sleepRecommendations builds advice sentences from the reported sleep hours,
// the goal, the age bracket and the fitness level. General sleep hygiene tips
// always close the list.
func (g *generator) sleepRecommendations() []string {
	var recs []string

	weekday := g.profile.SleepWeekdayHours
	weekend := g.profile.SleepWeekendHours

	if weekday < 7 {
		recs = append(recs,
			"You are sleeping less than 7 hours on weekdays, which can compromise your recovery and results. Try to increase your sleep to 7-9 hours per night.")
	}
	if weekend < 7 {
		recs = append(recs,
			"Even on weekends you are sleeping less than recommended. Sleep is crucial for muscle recovery and anabolic hormones.")
	}

	diff := weekend - weekday
	if diff < 0 {
		diff = -diff
	}
	if diff > 2 {
		recs = append(recs,
			"There is a large difference between your weekday and weekend sleep. Try to keep a more consistent pattern to improve sleep quality and recovery.")
	}

	switch g.profile.Goal {
	case GoalMuscleGain:
		recs = append(recs,
			"To maximise muscle gain, prioritise 8-9 hours of sleep per night. Growth hormone is released mainly during deep sleep.",
			"Routine suggestion: go to bed 9 hours before the time you need to wake up. Reserve the last 30 minutes before sleep for screen-free relaxation.",
			"Consider a casein shake before bed to supply amino acids overnight, an important window for muscle recovery.")
	case GoalWeightLoss:
		recs = append(recs,
			"Sleeping well is essential for weight loss. Sleep deprivation can increase hunger and slow your metabolism.",
			"Routine suggestion: keep a consistent bedtime and wake-up time, even on weekends. Avoid heavy meals within 3 hours of bedtime.",
			"Studies show that sleeping less than 7 hours per night is associated with more difficulty losing weight and a higher likelihood of less healthy food choices.")
	case GoalEndurance:
		recs = append(recs,
			"To improve endurance, adequate sleep is fundamental for cardiovascular and muscular recovery.",
			"Routine suggestion: prioritise 7-8 hours of quality sleep. Consider a short nap (20-30 minutes) on your most intense training days.",
			"Sleep quality directly affects your ability to recover between training sessions and your aerobic performance.")
	case GoalStrength:
		recs = append(recs,
			"Sleep is crucial for strength gains, as most neural and muscular recovery happens while you sleep.",
			"Routine suggestion: prioritise 8 hours of sleep per night. Keep your bedroom cool (18-20°C) to improve deep sleep quality.",
			"Sleep deprivation can significantly reduce your maximum force output and hold back your progress.")
	}

	switch {
	case g.profile.Age < 30:
		recs = append(recs,
			"For young adults, 7-9 hours of sleep are recommended. Even at a young age, do not underestimate how much sleep matters for recovery and results.")
	case g.profile.Age < 50:
		recs = append(recs,
			"Between 30 and 50, sleep quality tends to decline naturally. Consider strategies like reducing blue-light exposure at night and keeping the bedroom completely dark.")
	default:
		recs = append(recs,
			"After 50 it is common to find sleeping harder. Consider relaxation techniques like meditation or deep breathing before bed. Avoid alcohol, which may seem to help you fall asleep but degrades sleep quality.")
	}

	if g.profile.FitnessLevel == LevelAdvanced {
		recs = append(recs,
			"As an advanced athlete, your body needs optimised recovery. Consider tracking your sleep with an app or wearable to spot patterns and improve quality.",
			"Advanced routine suggestion: implement consistent sleep cycles and deep-breathing techniques before bed, and consider natural aids like magnesium or chamomile tea if you struggle to wind down.")
	}

	recs = append(recs,
		"Establish a consistent sleep routine, going to bed and waking up at the same times every day.",
		"Avoid caffeine and alcohol in the 4-6 hours before bedtime.",
		"Create a dark, quiet and cool sleeping environment (ideal temperature between 18-20°C).",
		"Avoid screens (phone, TV, computer) for at least 30-60 minutes before bed, as blue light suppresses melatonin.",
		"Consider a relaxing pre-sleep routine: reading, light stretching, meditation or a warm bath can signal your body that it is time to wind down.")

	return recs
}
