package metrics

import (
	"math"
	"strconv"

	"github.com/de-tools/health-guide/pkg/models/domain"
)

const (
	CategoryUnderweight = "Underweight"
	CategoryNormal      = "Normal weight"
	CategoryOverweight  = "Overweight"
	CategoryObesity     = "Obesity"
	CategoryUnknown     = "Unknown"
)

// Ordered; the intervals partition [0, +Inf).
var bmiCategories = [...]domain.BMICategory{
	{Name: CategoryUnderweight, Min: 0.0, Max: 18.5},
	{Name: CategoryNormal, Min: 18.5, Max: 25.0},
	{Name: CategoryOverweight, Min: 25.0, Max: 30.0},
	{Name: CategoryObesity, Min: 30.0, Max: math.Inf(1)},
}

var categoryExplanations = map[string]string{
	CategoryUnderweight: "This range suggests you may not be consuming enough nutrients or calories. Consult a professional for healthy weight gain strategies.",
	CategoryNormal:      "Your weight is considered healthy relative to your height, indicating a lower risk of common obesity-related diseases.",
	CategoryOverweight:  "This range indicates carrying excess weight. A focus on diet and increased activity is recommended to reduce health risks.",
	CategoryObesity:     "This range is associated with a significantly increased risk for serious health conditions. Professional consultation for a weight management plan is strongly advised.",
	CategoryUnknown:     "Could not determine a standard BMI meaning.",
}

// BMICategories returns a copy of the classification table in scan order.
func BMICategories() []domain.BMICategory {
	out := make([]domain.BMICategory, len(bmiCategories))
	copy(out, bmiCategories[:])
	return out
}

// ComputeBMI returns weight / height² rounded to two decimals.
// A non-positive height yields 0 rather than an error.
func ComputeBMI(weightKG, heightM float64) float64 {
	if heightM <= 0 {
		return 0.0
	}
	return round2(weightKG / (heightM * heightM))
}

// ClassifyBMI returns the first category whose interval contains bmi, or an
// Unknown category with a zero interval when none does.
func ClassifyBMI(bmi float64) domain.BMICategory {
	for _, c := range bmiCategories {
		if c.Contains(bmi) {
			return c
		}
	}
	return domain.BMICategory{Name: CategoryUnknown}
}

func ExplainCategory(category string) string {
	if text, ok := categoryExplanations[category]; ok {
		return text
	}
	return categoryExplanations[CategoryUnknown]
}

// round2 rounds half to even on the exact binary value and never overflows.
func round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}
