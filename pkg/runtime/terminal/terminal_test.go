package terminal

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/health-guide/pkg/models/api"
	"github.com/de-tools/health-guide/pkg/services/report"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCLI(t *testing.T, args ...string) (*CLI, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true

	var out, errOut bytes.Buffer
	cli := NewCLI(Options{
		Generator: report.NewGenerator(
			report.WithClock(func() time.Time { return time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC) }),
			report.WithIDSource(func() string { return "cli-report" }),
		),
		Input:     io.NopCloser(strings.NewReader("")),
		Output:    &out,
		ErrOutput: &errOut,
	})
	cli.SetArgs(args)
	return cli, &out, &errOut
}

func TestCLI_ReportText(t *testing.T) {
	cli, out, errOut := newTestCLI(t, "report",
		"--age", "25", "--height", "170", "--weight", "70", "--sleep", "8",
		"--activity", "Moderate", "--smoking", "No")

	require.NoError(t, cli.Execute())

	text := out.String()
	assert.Contains(t, text, "COMPREHENSIVE HEALTH METRICS REPORT")
	assert.Contains(t, text, "Calculated BMI: 24.22")
	assert.Contains(t, text, "BMI Category: Normal weight")
	for _, section := range []string{
		"[ BMI Overall Meaning ]",
		"[ Sleep Recommendation ]",
		"[ Activity Recommendation ]",
		"[ Smoking Status Advice ]",
		"[ General Health & Diet Suggestions ]",
	} {
		assert.Contains(t, text, section)
	}
	assert.Empty(t, errOut.String())
}

func TestCLI_ReportJSON(t *testing.T) {
	cli, out, _ := newTestCLI(t, "report", "-o", "json",
		"--age", "70", "--height", "165", "--weight", "60", "--sleep", "6")

	require.NoError(t, cli.Execute())

	var resp api.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "cli-report", resp.ID)
	assert.Equal(t, 22.04, resp.BMI)
	assert.Equal(t, "Sedentary", resp.Input.ActivityLevel)
	assert.Equal(t, "No", resp.Input.SmokingStatus)
}

func TestCLI_ReportInvalidInput(t *testing.T) {
	cli, out, errOut := newTestCLI(t, "report", "--age", "abc", "--height", "170", "--weight", "70", "--sleep", "8")

	err := cli.Execute()

	require.Error(t, err)
	assert.True(t, IsInputError(err))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Input Error:")
	assert.Contains(t, errOut.String(), "age must be a whole number")
}

func TestCLI_ReportUnsupportedFormat(t *testing.T) {
	cli, _, errOut := newTestCLI(t, "report", "-o", "xml", "--age", "25", "--height", "170", "--weight", "70", "--sleep", "8")

	err := cli.Execute()

	require.Error(t, err)
	assert.False(t, IsInputError(err))
	assert.Contains(t, errOut.String(), "unsupported format")
}

func TestCLI_ReportFromProfile(t *testing.T) {
	dir := t.TempDir()
	profiles := filepath.Join(dir, "profiles.ini")
	require.NoError(t, os.WriteFile(profiles, []byte(`[alice]
age = 25
height_cm = 170
weight_kg = 70
sleep_hours = 8
activity_level = Active
smoking_status = Yes
`), 0o644))

	cli, out, _ := newTestCLI(t, "report", "--profile-file", profiles, "--profile", "alice", "--weight", "95", "-o", "json")
	require.NoError(t, cli.Execute())

	var resp api.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, 95.0, resp.Input.WeightKG)
	assert.Equal(t, "Active", resp.Input.ActivityLevel)
	assert.Equal(t, "Obesity", resp.Category.Name)
}

func TestCLI_ProfilesFromConfig(t *testing.T) {
	dir := t.TempDir()
	profiles := filepath.Join(dir, "profiles.ini")
	require.NoError(t, os.WriteFile(profiles, []byte("[alice]\nage = 25\n\n[bob]\nage = 70\n"), 0o644))
	cfg := filepath.Join(dir, "health.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("report:\n  profiles_path: "+profiles+"\n"), 0o644))

	cli, out, _ := newTestCLI(t, "profiles", "--config", cfg)
	require.NoError(t, cli.Execute())

	assert.Equal(t, "Saved profiles:\nalice\nbob\n", out.String())
}

func TestCLI_ProfilesWithoutFile(t *testing.T) {
	cli, _, errOut := newTestCLI(t, "profiles")

	require.Error(t, cli.Execute())
	assert.Contains(t, errOut.String(), "no profile file configured")
}

func TestCLI_Categories(t *testing.T) {
	cli, out, _ := newTestCLI(t, "categories")
	require.NoError(t, cli.Execute())

	text := out.String()
	assert.Contains(t, text, "Normal weight")
	assert.Contains(t, text, "[18.5, 25.0)")
	assert.Contains(t, text, "[30.0, ∞)")
	assert.Contains(t, text, "65+")
	assert.Contains(t, text, "7-8 hours")
}

func TestCLI_VerboseLogsToErrOutput(t *testing.T) {
	cli, _, errOut := newTestCLI(t, "--verbose", "report",
		"--age", "25", "--height", "170", "--weight", "70", "--sleep", "8")
	t.Setenv("HEALTH_LOG_LEVEL", "debug")

	require.NoError(t, cli.Execute())
	assert.Contains(t, errOut.String(), `"message":"generated report"`)
	assert.Contains(t, errOut.String(), `"report_id":"cli-report"`)
}
