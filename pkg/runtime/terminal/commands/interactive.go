package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/de-tools/health-guide/pkg/models/domain"
	"github.com/de-tools/health-guide/pkg/runtime/terminal/export"
	"github.com/de-tools/health-guide/pkg/services/intake"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// LineReader is the subset of *readline.Instance the prompt uses.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// NewReadlineReader opens a readline prompt on the runtime's streams.
func NewReadlineReader(rt *Runtime) (LineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "> ",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		Stdin:             rt.In,
		Stdout:            rt.Out,
		Stderr:            rt.Err,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return rl, nil
}

type formField struct {
	label string
	dst   func(*intake.Form) *string
}

var formFields = []formField{
	{"Age (years, 18+)", func(f *intake.Form) *string { return &f.Age }},
	{"Height (cm)", func(f *intake.Form) *string { return &f.HeightCM }},
	{"Weight (kg)", func(f *intake.Form) *string { return &f.WeightKG }},
	{"Sleep Hours (avg)", func(f *intake.Form) *string { return &f.SleepHours }},
	{fmt.Sprintf("Activity Level %v", domain.ActivityLevels()), func(f *intake.Form) *string { return &f.ActivityLevel }},
	{fmt.Sprintf("Smoking Status %v", domain.SmokingStatuses()), func(f *intake.Form) *string { return &f.SmokingStatus }},
}

type InteractiveCmd struct {
	rt       *Runtime
	previous *domain.Report
}

func NewInteractiveCmd(rt *Runtime) *cobra.Command {
	ic := &InteractiveCmd{rt: rt}
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"form"},
		Short:   "Fill in the health form interactively",
		Long: `Prompt for each field and print a report after every complete submission.
Invalid input leaves the previous report in place. Press Enter to keep the value
shown in brackets, type "exit" or press Ctrl+D to quit.`,
		RunE: ic.run,
	}
}

func (ic *InteractiveCmd) run(cmd *cobra.Command, _ []string) error {
	open := ic.rt.NewLineReader
	if open == nil {
		open = NewReadlineReader
	}
	rl, err := open(ic.rt)
	if err != nil {
		return err
	}
	defer rl.Close()

	out := cmd.OutOrStdout()
	reporter := export.NewReporter(out, export.FormatText)
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Fprintf(out, "\n%s\n", cyan("=== Personalized Health Guide ==="))

	form := intake.Form{
		ActivityLevel: string(domain.ActivitySedentary),
		SmokingStatus: string(domain.SmokingNo),
	}

	for {
		next, err := ic.readForm(rl, form)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out, "\nGoodbye!")
			return nil
		}
		if err != nil {
			return err
		}
		form = next

		in, err := intake.Parse(form)
		if err != nil {
			Alert(cmd.ErrOrStderr(), err)
			if ic.previous != nil {
				fmt.Fprintln(out, "Previous report left unchanged.")
			}
			continue
		}

		ic.previous = ic.rt.Generator.Generate(in)
		if err := reporter.Handle(ic.previous); err != nil {
			return fmt.Errorf("failed to print report: %w", err)
		}
	}
}

// readForm prompts for every field, keeping the current value on empty input.
// Ctrl+C restarts the form; Ctrl+D or "exit" returns io.EOF.
func (ic *InteractiveCmd) readForm(rl LineReader, current intake.Form) (intake.Form, error) {
	form := current
	yellow := color.New(color.FgYellow).SprintFunc()

	for i := 0; i < len(formFields); i++ {
		field := formFields[i]
		dst := field.dst(&form)

		prompt := field.label
		if *dst != "" {
			prompt += fmt.Sprintf(" [%s]", *dst)
		}
		rl.SetPrompt(yellow(prompt + ": "))

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			form = current
			i = -1
			continue
		}
		if err != nil {
			return current, err
		}

		line = strings.TrimSpace(line)
		switch strings.ToLower(line) {
		case "exit", "quit":
			return current, io.EOF
		case "":
			continue
		}
		*dst = line
	}
	return form, nil
}
