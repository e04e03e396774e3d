package adapters

import (
	"math"
	"slices"

	"github.com/de-tools/health-guide/pkg/models/api"
	"github.com/de-tools/health-guide/pkg/models/domain"
	"github.com/de-tools/health-guide/pkg/services/intake"
)

func MapAPIRequestToForm(req api.ReportRequest) intake.Form {
	return intake.Form{
		Age:           req.Age,
		HeightCM:      req.HeightCM,
		WeightKG:      req.WeightKG,
		SleepHours:    req.SleepHours,
		ActivityLevel: req.ActivityLevel,
		SmokingStatus: req.SmokingStatus,
	}
}

func MapDomainInputToAPI(in domain.HealthInput) api.HealthInput {
	return api.HealthInput{
		Age:           in.Age,
		HeightCM:      in.HeightCM,
		WeightKG:      in.WeightKG,
		SleepHours:    in.SleepHours,
		ActivityLevel: string(in.Activity),
		SmokingStatus: string(in.Smoking),
	}
}

func MapDomainCategoryToAPI(c domain.BMICategory) api.BMICategory {
	out := api.BMICategory{Name: c.Name, Min: c.Min}
	if !math.IsInf(c.Max, 1) {
		maxVal := c.Max
		out.Max = &maxVal
	}
	return out
}

func MapDomainSleepRangeToAPI(r domain.SleepRange) api.SleepRange {
	return api.SleepRange{
		AgeGroup: r.AgeGroup,
		MinHours: r.MinHours,
		MaxHours: r.MaxHours,
	}
}

func MapDomainReportToAPI(r *domain.Report) api.Report {
	sections := make([]api.ReportSection, 0, len(r.Sections))
	for _, s := range r.Sections {
		sections = append(sections, api.ReportSection{
			Title: s.Title,
			Lines: slices.Clone(s.Lines),
		})
	}

	return api.Report{
		ID:          r.ID,
		Title:       r.Title,
		GeneratedAt: r.GeneratedAt,
		Input:       MapDomainInputToAPI(r.Input),
		BMI:         r.BMI,
		Category:    MapDomainCategoryToAPI(r.Category),
		Sections:    sections,
	}
}

func MapDomainTablesToAPI(categories []domain.BMICategory, sleep []domain.SleepRange) api.Categories {
	out := api.Categories{
		BMI:   make([]api.BMICategory, 0, len(categories)),
		Sleep: make([]api.SleepRange, 0, len(sleep)),
	}
	for _, c := range categories {
		out.BMI = append(out.BMI, MapDomainCategoryToAPI(c))
	}
	for _, r := range sleep {
		out.Sleep = append(out.Sleep, MapDomainSleepRangeToAPI(r))
	}
	return out
}
