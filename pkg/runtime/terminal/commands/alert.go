package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/de-tools/health-guide/pkg/services/intake"
	"github.com/fatih/color"
)

// Alert prints err the way the form reports rejected submissions.
func Alert(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()

	var invalid *intake.InvalidInputError
	if !errors.As(err, &invalid) {
		fmt.Fprintf(w, "%s %v\n", red("Error:"), err)
		return
	}

	fmt.Fprintf(w, "%s Please check your input values. Ensure Age, Height, Weight, and Sleep are valid numbers.\n",
		red("Input Error:"))

	names := make([]string, 0, len(invalid.Fields))
	for name := range invalid.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  - %s %s\n", name, invalid.Fields[name])
	}
}
