package commands

import (
	"errors"
	"fmt"

	"github.com/de-tools/health-guide/pkg/services/intake"
	"github.com/spf13/cobra"
)

var errNoProfileFile = errors.New("no profile file configured; pass --profile-file or set report.profiles_path")

type ReportCmd struct {
	rt          *Runtime
	form        intake.Form
	profile     string
	profileFile string
	format      string
}

func NewReportCmd(rt *Runtime) *cobra.Command {
	rc := &ReportCmd{rt: rt}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a health metrics report",
		Long: `Compute BMI, classify it, and print sleep, activity, smoking and diet advice.
Values can come from flags, from a saved profile, or both (flags win).`,
		Example: `  health report --age 25 --height 170 --weight 70 --sleep 8 --activity Moderate --smoking No
  health report --profile-file ~/.healthprofiles --profile alice --format json`,
		RunE: rc.run,
	}

	cmd.Flags().StringVar(&rc.form.Age, "age", "", "Age in years")
	cmd.Flags().StringVar(&rc.form.HeightCM, "height", "", "Height in centimetres")
	cmd.Flags().StringVar(&rc.form.WeightKG, "weight", "", "Weight in kilograms")
	cmd.Flags().StringVar(&rc.form.SleepHours, "sleep", "", "Average sleep hours per night")
	cmd.Flags().StringVar(&rc.form.ActivityLevel, "activity", "", "Activity level (Sedentary, Moderate, Active)")
	cmd.Flags().StringVar(&rc.form.SmokingStatus, "smoking", "", "Smoking status (Yes, No)")
	cmd.Flags().StringVar(&rc.profile, "profile", "", "Name of a saved profile to start from")
	cmd.Flags().StringVar(&rc.profileFile, "profile-file", "", "Path to the INI profile file")
	cmd.Flags().StringVarP(&rc.format, "format", "o", "", "Output format (text, json, yaml)")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := rc.rt.logger(ctx)

	reporter, err := rc.rt.reporter(rc.format)
	if err != nil {
		return err
	}

	form := rc.form
	if rc.profile != "" {
		reg, err := rc.rt.profiles(rc.profileFile)
		if err != nil {
			return fmt.Errorf("failed to open profiles: %w", err)
		}
		saved, err := reg.GetForm(ctx, rc.profile)
		if err != nil {
			return err
		}
		form = mergeForm(saved, rc.form, cmd)
	}

	in, err := intake.Parse(form)
	if err != nil {
		logger.Debug().Err(err).Msg("rejected input")
		return err
	}

	report := rc.rt.Generator.Generate(in)
	logger.Debug().
		Str("report_id", report.ID).
		Str("category", report.Category.Name).
		Msg("generated report")

	return reporter.Handle(report)
}

// mergeForm overlays the explicitly set flags onto a saved profile.
func mergeForm(saved, flags intake.Form, cmd *cobra.Command) intake.Form {
	overrides := []struct {
		flag string
		dst  *string
		src  string
	}{
		{"age", &saved.Age, flags.Age},
		{"height", &saved.HeightCM, flags.HeightCM},
		{"weight", &saved.WeightKG, flags.WeightKG},
		{"sleep", &saved.SleepHours, flags.SleepHours},
		{"activity", &saved.ActivityLevel, flags.ActivityLevel},
		{"smoking", &saved.SmokingStatus, flags.SmokingStatus},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			*o.dst = o.src
		}
	}
	return saved
}
