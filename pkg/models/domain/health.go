package domain

import "strings"

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "Sedentary"
	ActivityModerate  ActivityLevel = "Moderate"
	ActivityActive    ActivityLevel = "Active"
)

// ActivityLevels lists the selectable activity levels in form order.
func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{ActivitySedentary, ActivityModerate, ActivityActive}
}

// ParseActivityLevel matches s against the known levels ignoring case.
func ParseActivityLevel(s string) (ActivityLevel, bool) {
	for _, level := range ActivityLevels() {
		if strings.EqualFold(strings.TrimSpace(s), string(level)) {
			return level, true
		}
	}
	return "", false
}

type SmokingStatus string

const (
	SmokingYes SmokingStatus = "Yes"
	SmokingNo  SmokingStatus = "No"
)

func SmokingStatuses() []SmokingStatus {
	return []SmokingStatus{SmokingNo, SmokingYes}
}

func ParseSmokingStatus(s string) (SmokingStatus, bool) {
	for _, status := range SmokingStatuses() {
		if strings.EqualFold(strings.TrimSpace(s), string(status)) {
			return status, true
		}
	}
	return "", false
}

// HealthInput is one validated form submission. The form tags name the
// submitted fields and the validate tags bound them.
type HealthInput struct {
	Age        int           `form:"age" validate:"gt=0,max=150"`
	HeightCM   float64       `form:"height_cm" validate:"gt=0,min=30,max=300"`
	WeightKG   float64       `form:"weight_kg" validate:"gt=0,max=1000"`
	SleepHours float64       `form:"sleep_hours" validate:"gte=0,max=24"`
	Activity   ActivityLevel `form:"activity_level" validate:"oneof=Sedentary Moderate Active"`
	Smoking    SmokingStatus `form:"smoking_status" validate:"oneof=Yes No"`
}

func (in HealthInput) HeightM() float64 {
	return in.HeightCM / 100
}

// BMICategory is a classification label over the half-open interval [Min, Max).
type BMICategory struct {
	Name string
	Min  float64
	Max  float64
}

func (c BMICategory) Contains(bmi float64) bool {
	return c.Min <= bmi && bmi < c.Max
}

// SleepRange is the closed interval of recommended nightly hours for an age group.
type SleepRange struct {
	AgeGroup string
	MinHours float64
	MaxHours float64
}
