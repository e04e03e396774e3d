package intake

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/de-tools/health-guide/pkg/models/domain"
	"github.com/go-playground/validator/v10"
)

const (
	FieldAge           = "age"
	FieldHeightCM      = "height_cm"
	FieldWeightKG      = "weight_kg"
	FieldSleepHours    = "sleep_hours"
	FieldActivityLevel = "activity_level"
	FieldSmokingStatus = "smoking_status"
)

var ErrInvalidInput = errors.New("invalid input")

// Form holds the raw, untyped values of a submission.
type Form struct {
	Age           string `json:"age" ini:"age"`
	HeightCM      string `json:"height_cm" ini:"height_cm"`
	WeightKG      string `json:"weight_kg" ini:"weight_kg"`
	SleepHours    string `json:"sleep_hours" ini:"sleep_hours"`
	ActivityLevel string `json:"activity_level" ini:"activity_level"`
	SmokingStatus string `json:"smoking_status" ini:"smoking_status"`
}

// InvalidInputError reports every field of a Form that failed validation,
// keyed by field name.
type InvalidInputError struct {
	Fields map[string]string
}

func (e *InvalidInputError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Parse converts f into a HealthInput and validates it. Empty enum fields
// fall back to Sedentary and No.
func Parse(f Form) (domain.HealthInput, error) {
	problems := map[string]string{}

	age, err := strconv.Atoi(strings.TrimSpace(f.Age))
	if err != nil {
		problems[FieldAge] = "must be a whole number"
	}
	height := parseNumber(FieldHeightCM, f.HeightCM, problems)
	weight := parseNumber(FieldWeightKG, f.WeightKG, problems)
	sleep := parseNumber(FieldSleepHours, f.SleepHours, problems)

	in := domain.HealthInput{
		Age:        age,
		HeightCM:   height,
		WeightKG:   weight,
		SleepHours: sleep,
		Activity:   domain.ActivitySedentary,
		Smoking:    domain.SmokingNo,
	}
	if raw := strings.TrimSpace(f.ActivityLevel); raw != "" {
		level, ok := domain.ParseActivityLevel(raw)
		if !ok {
			level = domain.ActivityLevel(raw)
		}
		in.Activity = level
	}
	if raw := strings.TrimSpace(f.SmokingStatus); raw != "" {
		status, ok := domain.ParseSmokingStatus(raw)
		if !ok {
			status = domain.SmokingStatus(raw)
		}
		in.Smoking = status
	}

	if err := Validate(in); err != nil {
		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			return domain.HealthInput{}, err
		}
		for field, msg := range invalid.Fields {
			if _, ok := problems[field]; !ok {
				problems[field] = msg
			}
		}
	}

	if len(problems) > 0 {
		return domain.HealthInput{}, &InvalidInputError{Fields: problems}
	}
	return in, nil
}

// Validate checks the bounds declared on domain.HealthInput.
func Validate(in domain.HealthInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate input: %w", err)
	}

	problems := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		problems[fe.Field()] = describe(fe)
	}
	return &InvalidInputError{Fields: problems}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return "must be positive"
	case "gte":
		return "must not be negative"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return fmt.Sprintf("must be one of %v", strings.Fields(fe.Param()))
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// parseNumber records a problem for field when raw is not a finite number.
func parseNumber(field, raw string, problems map[string]string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		problems[field] = "must be a number"
		return 0
	}
	return v
}
