package metrics

import "github.com/de-tools/health-guide/pkg/models/domain"

var activityAdvice = map[domain.ActivityLevel]string{
	domain.ActivitySedentary: "Sedentary Lifestyle Detected. Recommendation: Aim to break up long periods of sitting (e.g., stand up every hour). " +
		"Start with 30 minutes of light activity (like walking) daily and gradually increase intensity to moderate.",
	domain.ActivityModerate: "Moderate Activity Level. Recommendation: You are meeting minimum guidelines! " +
		"To maximize benefits, ensure you incorporate strength training (2-3 times per week) alongside your cardio for muscle and bone health.",
	domain.ActivityActive: "Active Lifestyle! Recommendation: Excellent work. To prevent injury and fatigue, ensure proper recovery time, nutrition, and hydration. " +
		"Consider mixing up your routines to engage different muscle groups.",
}

var smokingAdvice = map[domain.SmokingStatus]string{
	domain.SmokingYes: "Smoking Status: Tobacco use is extremely detrimental to cardiovascular and respiratory health. " +
		"Health Priority: Seek support to quit smoking immediately. Resources like quit-lines or medical professionals can provide vital assistance.",
	domain.SmokingNo: "Smoking Status: Non-smoker. Excellent! " +
		"Recommendation: Maintain this status and avoid exposure to second-hand smoke to protect your long-term health.",
}

var (
	generalTips = [...]string{
		"General Wellness Tip: Aim for 5 servings of fruits and vegetables daily and minimize processed foods.",
		"Hydration Tip: Drink at least 8 glasses (about 2 liters) of water per day.",
	}

	categoryTips = map[string]string{
		CategoryUnderweight: "Nutritional Focus: Consider nutrient-dense foods (healthy fats, lean proteins) and consult a professional about healthy ways to gain muscle and fat mass.",
		CategoryNormal:      "Maintenance Goal: Focus on consistency. Continue balancing a healthy diet with regular, varied exercise.",
		CategoryOverweight:  "Dietary Change: Prioritize whole foods and increase high-fiber, low-calorie options like vegetables. Focus on sustainable portion control.",
		CategoryObesity:     "Health Priority: It is highly recommended to consult a healthcare provider for a personalized, safe, and effective plan. Focus on achievable, small, consistent changes.",
	}
)

const (
	unknownActivityAdvice = "Activity Recommendation: Could not determine specific advice."
	unknownSmokingAdvice  = "Smoking Status: Unknown. Please confirm your smoking status for relevant advice."
)

func ActivityFeedback(level domain.ActivityLevel) string {
	if text, ok := activityAdvice[level]; ok {
		return text
	}
	return unknownActivityAdvice
}

func SmokingAdvice(status domain.SmokingStatus) string {
	if text, ok := smokingAdvice[status]; ok {
		return text
	}
	return unknownSmokingAdvice
}

// GeneralRecommendations returns the wellness tips followed by the tip for
// category, if it has one.
func GeneralRecommendations(category string) []string {
	tips := make([]string, 0, len(generalTips)+1)
	tips = append(tips, generalTips[:]...)
	if tip, ok := categoryTips[category]; ok {
		tips = append(tips, tip)
	}
	return tips
}
