package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	rt          *Runtime
	profileFile string
}

func NewProfilesCmd(rt *Runtime) *cobra.Command {
	pc := &ProfilesCmd{rt: rt}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List saved input profiles",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.profileFile, "profile-file", "", "Path to the INI profile file")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	reg, err := pc.rt.profiles(pc.profileFile)
	if err != nil {
		return fmt.Errorf("failed to open profiles: %w", err)
	}

	profiles, err := reg.GetProfiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}
	if len(profiles) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved profiles found")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved profiles:\n%s\n", strings.Join(profiles, "\n"))
	return nil
}
