package health

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/de-tools/health-guide/pkg/adapters"
	"github.com/de-tools/health-guide/pkg/models/api"
	"github.com/de-tools/health-guide/pkg/models/domain"
	"github.com/de-tools/health-guide/pkg/monitoring"
	"github.com/de-tools/health-guide/pkg/runtime/terminal/export"
	"github.com/de-tools/health-guide/pkg/services/intake"
	"github.com/de-tools/health-guide/pkg/services/metrics"
	"github.com/de-tools/health-guide/pkg/services/report"
	"github.com/rs/zerolog"
)

const (
	sourceForm = "form"
	sourceAPI  = "api"

	fieldPreviousReport = "previous_report"
	maxBodyBytes        = 1 << 16
)

type Handler struct {
	generator report.Generator
	renderer  *export.Reporter
	page      *template.Template
}

func NewHandler(generator report.Generator) *Handler {
	return &Handler{
		generator: generator,
		renderer:  export.NewReporter(nil, export.FormatText),
		page:      template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// pageData backs the HTML form. Report holds the rendered text report shown
// below the form; on invalid input it is the previous report, unchanged.
type pageData struct {
	Form       intake.Form
	Activities []domain.ActivityLevel
	Smoking    []domain.SmokingStatus
	Alert      string
	Fields     map[string]string
	Report     string
}

func newPageData(form intake.Form) pageData {
	return pageData{
		Form:       form,
		Activities: domain.ActivityLevels(),
		Smoking:    domain.SmokingStatuses(),
	}
}

func (h *Handler) ShowForm(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, newPageData(intake.Form{
		ActivityLevel: string(domain.ActivitySedentary),
		SmokingStatus: string(domain.SmokingNo),
	}))
}

func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	form := intake.Form{
		Age:           r.PostFormValue(intake.FieldAge),
		HeightCM:      r.PostFormValue(intake.FieldHeightCM),
		WeightKG:      r.PostFormValue(intake.FieldWeightKG),
		SleepHours:    r.PostFormValue(intake.FieldSleepHours),
		ActivityLevel: r.PostFormValue(intake.FieldActivityLevel),
		SmokingStatus: r.PostFormValue(intake.FieldSmokingStatus),
	}
	data := newPageData(form)

	in, err := intake.Parse(form)
	if err != nil {
		monitoring.IncInvalidInput(sourceForm)
		logger.Info().Err(err).Msg("rejected form submission")

		data.Alert = "Please check your input values. Ensure Age, Height, Weight, and Sleep are valid numbers."
		data.Fields = invalidFields(err)
		data.Report = r.PostFormValue(fieldPreviousReport)
		h.renderPage(w, r, http.StatusBadRequest, data)
		return
	}

	rep := h.generator.Generate(in)
	monitoring.IncReportGenerated(rep.Category.Name)
	text, err := h.renderer.Render(rep)
	if err != nil {
		logger.Error().Err(err).Msg("failed to render report")
		http.Error(w, "failed to render report", http.StatusInternalServerError)
		return
	}

	logger.Debug().
		Str("report_id", rep.ID).
		Str("category", rep.Category.Name).
		Msg("generated report")

	data.Report = text
	h.renderPage(w, r, http.StatusOK, data)
}

func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.ReportRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, api.ErrorResponse{Error: "request body must be a JSON object"})
		return
	}

	in, err := intake.Parse(adapters.MapAPIRequestToForm(req))
	if err != nil {
		monitoring.IncInvalidInput(sourceAPI)
		writeJSON(w, r, http.StatusBadRequest, api.ErrorResponse{
			Error:  intake.ErrInvalidInput.Error(),
			Fields: invalidFields(err),
		})
		return
	}

	rep := h.generator.Generate(in)
	monitoring.IncReportGenerated(rep.Category.Name)
	logger.Debug().
		Str("report_id", rep.ID).
		Str("category", rep.Category.Name).
		Msg("generated report")

	writeJSON(w, r, http.StatusOK, adapters.MapDomainReportToAPI(rep))
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, adapters.MapDomainTablesToAPI(metrics.BMICategories(), metrics.SleepRanges()))
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.page.Execute(w, data); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to render page")
	}
}

func invalidFields(err error) map[string]string {
	var invalid *intake.InvalidInputError
	if errors.As(err, &invalid) {
		return invalid.Fields
	}
	return nil
}

// writeJSON encodes v before writing the status so an encoding failure can
// still be reported as a 500.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to write response")
	}
}
