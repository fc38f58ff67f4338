package plan

import "math"

// Activity factors applied to the basal metabolic rate, keyed by weekly
// workout count.
const (
	activitySedentary  = 1.2
	activityLight      = 1.375
	activityModerate   = 1.55
	activityVeryActive = 1.725
)

// CalculateBodyMetrics derives BMI, basal metabolic rate, daily calorie needs
// and a rough body-fat estimate from the profile. BMR uses the
// Mifflin-St Jeor equation; the body-fat estimate is the Deurenberg
// BMI-based approximation clamped to 5-50%.
func CalculateBodyMetrics(profile Profile) BodyMetrics {
	heightM := profile.HeightCm / 100
	bmi := profile.WeightKg / (heightM * heightM)

	bmr := 10*profile.WeightKg + 6.25*profile.HeightCm - 5*float64(profile.Age)
	if profile.Gender == GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	factor := activitySedentary
	switch {
	case profile.WorkoutsPerWeek >= 6:
		factor = activityVeryActive
	case profile.WorkoutsPerWeek >= 3:
		factor = activityModerate
	case profile.WorkoutsPerWeek >= 1:
		factor = activityLight
	}

	bodyFat := 1.2*bmi + 0.23*float64(profile.Age) - 5.4
	if profile.Gender == GenderMale {
		bodyFat = 1.2*bmi + 0.23*float64(profile.Age) - 16.2
	}
	bodyFat = math.Max(5, math.Min(bodyFat, 50))

	var waistToHip *float64
	if profile.WaistCircumference != nil && profile.HipCircumference != nil && *profile.HipCircumference != 0 {
		ratio := *profile.WaistCircumference / *profile.HipCircumference
		waistToHip = &ratio
	}

	return BodyMetrics{
		BMI:                math.Round(bmi*100) / 100,
		BMICategory:        bmiCategory(bmi),
		BasalMetabolicRate: int(math.Round(bmr)),
		DailyCalorieNeeds:  int(math.Round(bmr * factor)),
		BodyFatEstimate:    math.Round(bodyFat*10) / 10,
		WaistToHipRatio:    waistToHip,
		WaistCircumference: profile.WaistCircumference,
		HipCircumference:   profile.HipCircumference,
		ChestCircumference: profile.ChestCircumference,
		ArmCircumference:   profile.ArmCircumference,
		ThighCircumference: profile.ThighCircumference,
		CalfCircumference:  profile.CalfCircumference,
	}
}

func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	case bmi < 35:
		return "Obesity class I"
	case bmi < 40:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
