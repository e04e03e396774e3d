package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/de-tools/health-guide/pkg/services/intake"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestAlert(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	Alert(&buf, &intake.InvalidInputError{Fields: map[string]string{
		"sleep_hours": "must not be negative",
		"age":         "must be positive",
	}})
	assert.Equal(t, "Input Error: Please check your input values. Ensure Age, Height, Weight, and Sleep are valid numbers.\n"+
		"  - age must be positive\n"+
		"  - sleep_hours must not be negative\n", buf.String())

	buf.Reset()
	Alert(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}
