package export

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/health-guide/pkg/adapters"
	"github.com/de-tools/health-guide/pkg/models/domain"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported format %q. Supported formats: %s, %s, %s", s, FormatText, FormatJSON, FormatYAML)
	}
}

type LayoutConfig struct {
	RuleWidth   int
	TitleIndent int
	Bullet      string
}

func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		RuleWidth:   50,
		TitleIndent: 10,
		Bullet:      "->",
	}
}

type Reporter struct {
	writer io.Writer
	format Format
	config LayoutConfig
	tmpl   *template.Template
}

func NewReporter(writer io.Writer, format Format) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	if format == "" {
		format = FormatText
	}
	c := &Reporter{
		writer: writer,
		format: format,
		config: DefaultLayoutConfig(),
	}
	c.tmpl = template.Must(template.New("report").Funcs(c.funcMap()).Parse(reportTemplate))
	return c
}

func (c *Reporter) Handle(report *domain.Report) error {
	switch c.format {
	case FormatJSON:
		enc := json.NewEncoder(c.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(adapters.MapDomainReportToAPI(report))
	case FormatYAML:
		enc := yaml.NewEncoder(c.writer)
		if err := enc.Encode(adapters.MapDomainReportToAPI(report)); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	default:
		return c.tmpl.Execute(c.writer, report)
	}
}

// Render returns the text layout of report regardless of the configured format.
func (c *Reporter) Render(report *domain.Report) (string, error) {
	var sb strings.Builder
	if err := c.tmpl.Execute(&sb, report); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return sb.String(), nil
}

func (c *Reporter) funcMap() template.FuncMap {
	return template.FuncMap{
		"rule": func(ch string) string {
			return strings.Repeat(ch, c.config.RuleWidth)
		},
		"title": func(s string) string {
			return strings.Repeat(" ", c.config.TitleIndent) + s
		},
		"bullet": func() string {
			return c.config.Bullet
		},
		"bound": func(v float64) string {
			if math.IsInf(v, 1) {
				return "and above"
			}
			return fmt.Sprintf("to %.1f", v)
		},
	}
}

const reportTemplate = `{{rule "="}}
{{title .Title}}
{{rule "="}}
Age: {{.Input.Age}} years
Height: {{printf "%.1f" .Input.HeightCM}} cm | Weight: {{printf "%.1f" .Input.WeightKG}} kg
{{rule "-"}}
Calculated BMI: {{printf "%.2f" .BMI}}
BMI Category: {{.Category.Name}}
(Ideal BMI Range: {{printf "%.1f" .Category.Min}} {{bound .Category.Max}})
{{range $i, $s := .Sections}}
[ {{$s.Title}} ]
{{range $s.Lines}}{{bullet}} {{.}}
{{end}}{{if eq $i 0}}{{rule "="}}
{{end}}{{end}}`
