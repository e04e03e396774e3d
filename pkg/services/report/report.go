package report

import (
	"time"

	"github.com/de-tools/health-guide/pkg/models/domain"
	"github.com/de-tools/health-guide/pkg/services/metrics"
	"github.com/google/uuid"
)

const (
	Title = "COMPREHENSIVE HEALTH METRICS REPORT"

	SectionBMIMeaning      = "BMI Overall Meaning"
	SectionSleep           = "Sleep Recommendation"
	SectionActivity        = "Activity Recommendation"
	SectionSmoking         = "Smoking Status Advice"
	SectionGeneralWellness = "General Health & Diet Suggestions"
)

// Generator assembles reports from validated input.
type Generator interface {
	Generate(in domain.HealthInput) *domain.Report
}

type generator struct {
	now   func() time.Time
	newID func() string
}

type Option func(*generator)

func WithClock(now func() time.Time) Option {
	return func(g *generator) { g.now = now }
}

func WithIDSource(newID func() string) Option {
	return func(g *generator) { g.newID = newID }
}

func NewGenerator(opts ...Option) Generator {
	g := &generator{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs the metrics engine over in. Callers are expected to have
// validated in beforehand.
func (g *generator) Generate(in domain.HealthInput) *domain.Report {
	bmi := metrics.ComputeBMI(in.WeightKG, in.HeightM())
	category := metrics.ClassifyBMI(bmi)

	return &domain.Report{
		ID:          g.newID(),
		Title:       Title,
		GeneratedAt: g.now().UTC(),
		Input:       in,
		BMI:         bmi,
		Category:    category,
		Sections: []domain.ReportSection{
			{Title: SectionBMIMeaning, Lines: []string{metrics.ExplainCategory(category.Name)}},
			{Title: SectionSleep, Lines: []string{metrics.SleepFeedback(in.Age, in.SleepHours)}},
			{Title: SectionActivity, Lines: []string{metrics.ActivityFeedback(in.Activity)}},
			{Title: SectionSmoking, Lines: []string{metrics.SmokingAdvice(in.Smoking)}},
			{Title: SectionGeneralWellness, Lines: metrics.GeneralRecommendations(category.Name)},
		},
	}
}
