package domain

import "time"

// Report represents a complete health metrics report for one submission
type Report struct {
	ID          string
	Title       string
	GeneratedAt time.Time
	Input       HealthInput
	BMI         float64
	Category    BMICategory
	Sections    []ReportSection
}

// ReportSection represents a labeled block of advice in the report
type ReportSection struct {
	Title string
	Lines []string
}

// Section returns the section with the given title.
func (r *Report) Section(title string) (ReportSection, bool) {
	for _, s := range r.Sections {
		if s.Title == title {
			return s, true
		}
	}
	return ReportSection{}, false
}
