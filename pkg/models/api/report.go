package api

import "time"

type ReportRequest struct {
	Age           string `json:"age"`
	HeightCM      string `json:"height_cm"`
	WeightKG      string `json:"weight_kg"`
	SleepHours    string `json:"sleep_hours"`
	ActivityLevel string `json:"activity_level"`
	SmokingStatus string `json:"smoking_status"`
}

type HealthInput struct {
	Age           int     `json:"age" yaml:"age"`
	HeightCM      float64 `json:"height_cm" yaml:"height_cm"`
	WeightKG      float64 `json:"weight_kg" yaml:"weight_kg"`
	SleepHours    float64 `json:"sleep_hours" yaml:"sleep_hours"`
	ActivityLevel string  `json:"activity_level" yaml:"activity_level"`
	SmokingStatus string  `json:"smoking_status" yaml:"smoking_status"`
}

// BMICategory carries a nil Max for the unbounded top category.
type BMICategory struct {
	Name string   `json:"name" yaml:"name"`
	Min  float64  `json:"min" yaml:"min"`
	Max  *float64 `json:"max" yaml:"max"`
}

type SleepRange struct {
	AgeGroup string  `json:"age_group" yaml:"age_group"`
	MinHours float64 `json:"min_hours" yaml:"min_hours"`
	MaxHours float64 `json:"max_hours" yaml:"max_hours"`
}

type ReportSection struct {
	Title string   `json:"title" yaml:"title"`
	Lines []string `json:"lines" yaml:"lines"`
}

type Report struct {
	ID          string          `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	GeneratedAt time.Time       `json:"generated_at" yaml:"generated_at"`
	Input       HealthInput     `json:"input" yaml:"input"`
	BMI         float64         `json:"bmi" yaml:"bmi"`
	Category    BMICategory     `json:"category" yaml:"category"`
	Sections    []ReportSection `json:"sections" yaml:"sections"`
}

type Categories struct {
	BMI   []BMICategory `json:"bmi" yaml:"bmi"`
	Sleep []SleepRange  `json:"sleep" yaml:"sleep"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
