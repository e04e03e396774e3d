package health

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/health-guide/pkg/models/api"
	"github.com/de-tools/health-guide/pkg/models/domain"
	"github.com/de-tools/health-guide/pkg/monitoring"
	"github.com/de-tools/health-guide/pkg/services/report"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(in domain.HealthInput) *domain.Report {
	args := m.Called(in)
	return args.Get(0).(*domain.Report)
}

var defaultInput = domain.HealthInput{
	Age:        25,
	HeightCM:   170,
	WeightKG:   70,
	SleepHours: 8,
	Activity:   domain.ActivityModerate,
	Smoking:    domain.SmokingNo,
}

func stubReport() *domain.Report {
	return &domain.Report{
		ID:          "report-1",
		Title:       report.Title,
		GeneratedAt: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Input:       defaultInput,
		BMI:         24.22,
		Category:    domain.BMICategory{Name: "Normal weight", Min: 18.5, Max: 25},
		Sections: []domain.ReportSection{
			{Title: report.SectionBMIMeaning, Lines: []string{"healthy"}},
		},
	}
}

func TestCreateReport(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mockGenerator)
		expectedStatus int
		check          func(*testing.T, []byte)
	}{
		{
			name: "successful response",
			body: `{"age":"25","height_cm":"170","weight_kg":"70","sleep_hours":"8","activity_level":"Moderate","smoking_status":"No"}`,
			setupMock: func(m *mockGenerator) {
				m.On("Generate", defaultInput).Return(stubReport())
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp api.Report
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "report-1", resp.ID)
				assert.Equal(t, 24.22, resp.BMI)
				assert.Equal(t, "Normal weight", resp.Category.Name)
			},
		},
		{
			name:           "invalid input",
			body:           `{"age":"abc","height_cm":"170","weight_kg":"0","sleep_hours":"8"}`,
			setupMock:      func(m *mockGenerator) {},
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				var resp api.ErrorResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "invalid input", resp.Error)
				assert.Equal(t, map[string]string{
					"age":       "must be a whole number",
					"weight_kg": "must be positive",
				}, resp.Fields)
			},
		},
		{
			name:           "out of range values",
			body:           `{"age":"25","height_cm":"1","weight_kg":"1e306","sleep_hours":"8"}`,
			setupMock:      func(m *mockGenerator) {},
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				var resp api.ErrorResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, map[string]string{
					"height_cm": "must be at least 30",
					"weight_kg": "must be at most 1000",
				}, resp.Fields)
			},
		},
		{
			name:           "malformed body",
			body:           `{"age":`,
			setupMock:      func(m *mockGenerator) {},
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				var resp api.ErrorResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.NotEmpty(t, resp.Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := new(mockGenerator)
			tt.setupMock(gen)
			h := NewHandler(gen)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			h.CreateReport(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			tt.check(t, rec.Body.Bytes())
			gen.AssertExpectations(t)
		})
	}
}

func reportsGenerated(t *testing.T, category string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "health_guide_reports_generated_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "category" && l.GetValue() == category {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestCreateReport_CountsGeneratedReports(t *testing.T) {
	monitoring.Register()
	gen := new(mockGenerator)
	gen.On("Generate", defaultInput).Return(stubReport())
	h := NewHandler(gen)

	before := reportsGenerated(t, "Normal weight")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewBufferString(
		`{"age":"25","height_cm":"170","weight_kg":"70","sleep_hours":"8","activity_level":"Moderate","smoking_status":"No"}`))
	rec := httptest.NewRecorder()
	h.CreateReport(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postForm(h, url.Values{
		"age":            {"25"},
		"height_cm":      {"170"},
		"weight_kg":      {"70"},
		"sleep_hours":    {"8"},
		"activity_level": {"Moderate"},
		"smoking_status": {"No"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, before+2, reportsGenerated(t, "Normal weight"))
}

func TestWriteJSON_EncodeFailure(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	writeJSON(rec, req, http.StatusOK, map[string]float64{"bmi": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEqual(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "failed to encode response")
}

func TestListCategories(t *testing.T) {
	h := NewHandler(new(mockGenerator))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	rec := httptest.NewRecorder()

	h.ListCategories(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp api.Categories
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.BMI, 4)
	assert.Equal(t, "Underweight", resp.BMI[0].Name)
	assert.Nil(t, resp.BMI[3].Max)
	assert.Equal(t, []api.SleepRange{
		{AgeGroup: "18-64", MinHours: 7, MaxHours: 9},
		{AgeGroup: "65+", MinHours: 7, MaxHours: 8},
	}, resp.Sleep)
}

func TestShowForm(t *testing.T) {
	h := NewHandler(new(mockGenerator))
	rec := httptest.NewRecorder()

	h.ShowForm(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `name="sleep_hours"`)
	assert.Contains(t, body, "<option selected>Sedentary</option>")
	assert.Contains(t, body, "<option selected>No</option>")
	assert.NotContains(t, body, `role="alert"`)
}

func postForm(h *Handler, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/report", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.SubmitForm(rec, req)
	return rec
}

func TestSubmitForm_Success(t *testing.T) {
	gen := new(mockGenerator)
	gen.On("Generate", defaultInput).Return(stubReport())
	h := NewHandler(gen)

	rec := postForm(h, url.Values{
		"age":            {"25"},
		"height_cm":      {"170"},
		"weight_kg":      {"70"},
		"sleep_hours":    {"8"},
		"activity_level": {"Moderate"},
		"smoking_status": {"No"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Calculated BMI: 24.22")
	assert.Contains(t, body, "[ BMI Overall Meaning ]")
	assert.Contains(t, body, "<option selected>Moderate</option>")
	assert.NotContains(t, body, `role="alert"`)
	gen.AssertExpectations(t)
}

func TestSubmitForm_InvalidKeepsPreviousReport(t *testing.T) {
	gen := new(mockGenerator)
	h := NewHandler(gen)

	rec := postForm(h, url.Values{
		"age":             {"25"},
		"height_cm":       {"tall"},
		"weight_kg":       {"70"},
		"sleep_hours":     {"-2"},
		"previous_report": {"Calculated BMI: 19.00"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `role="alert"`)
	assert.Contains(t, body, "Input Error")
	assert.Contains(t, body, "must not be negative")
	assert.Contains(t, body, "Calculated BMI: 19.00")
	assert.Contains(t, body, `value="tall"`)
	gen.AssertNotCalled(t, "Generate", mock.Anything)
}
