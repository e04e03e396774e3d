package metrics

import (
	"fmt"
	"strconv"

	"github.com/de-tools/health-guide/pkg/models/domain"
)

const (
	AgeGroupAdult  = "18-64"
	AgeGroupSenior = "65+"

	minorsSleepNote = "Note: Specific recommendations for minors/children are not included in this model."
)

var sleepRanges = map[string]domain.SleepRange{
	AgeGroupAdult:  {AgeGroup: AgeGroupAdult, MinHours: 7, MaxHours: 9},
	AgeGroupSenior: {AgeGroup: AgeGroupSenior, MinHours: 7, MaxHours: 8},
}

// SleepRanges returns the recommendation table ordered by age group.
func SleepRanges() []domain.SleepRange {
	return []domain.SleepRange{sleepRanges[AgeGroupAdult], sleepRanges[AgeGroupSenior]}
}

// SleepRangeFor selects the age bracket for age. Minors have no bracket.
func SleepRangeFor(age int) (domain.SleepRange, bool) {
	switch {
	case age >= 18 && age <= 64:
		return sleepRanges[AgeGroupAdult], true
	case age >= 65:
		return sleepRanges[AgeGroupSenior], true
	default:
		return domain.SleepRange{}, false
	}
}

func SleepFeedback(age int, hours float64) string {
	r, ok := SleepRangeFor(age)
	if !ok {
		return minorsSleepNote
	}

	slept := formatHours(hours)
	recommended := fmt.Sprintf("%s-%s", formatHours(r.MinHours), formatHours(r.MaxHours))

	switch {
	case hours < r.MinHours:
		return fmt.Sprintf("You slept %s hours, which is less than the recommended %s hours for your age group (%s). "+
			"Recommendation: Try to prioritize an earlier bedtime and aim for a consistent sleep schedule to improve rest and focus.",
			slept, recommended, r.AgeGroup)
	case hours > r.MaxHours:
		return fmt.Sprintf("You slept %s hours, which is slightly more than the recommended %s hours for your age group (%s). "+
			"Recommendation: Excessive sleep can sometimes indicate underlying issues. If this is unusual, review your daily routine for consistent sleep quality.",
			slept, recommended, r.AgeGroup)
	default:
		return fmt.Sprintf("Excellent! Your sleep of %s hours falls perfectly within the recommended %s hour range. "+
			"Recommendation: Maintain this consistent sleep pattern for optimal health.",
			slept, recommended)
	}
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
