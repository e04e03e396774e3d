package registry

import (
	"context"
	"fmt"

	"github.com/de-tools/health-guide/pkg/services/intake"
	"gopkg.in/ini.v1"
)

type iniRegistry struct {
	cfg *ini.File
}

// NewProfileRegistry loads profiles from an INI file where each section is a
// profile and keys are form field names:
//
//	[alice]
//	age = 25
//	height_cm = 170
func NewProfileRegistry(path string) (ProfileRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles from %s: %w", path, err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (r *iniRegistry) GetForm(_ context.Context, profile string) (intake.Form, error) {
	section, err := r.cfg.GetSection(profile)
	if err != nil || len(section.Keys()) == 0 {
		return intake.Form{}, fmt.Errorf("profile %s not found", profile)
	}

	var form intake.Form
	if err := section.MapTo(&form); err != nil {
		return intake.Form{}, fmt.Errorf("failed to read profile %s: %w", profile, err)
	}
	return form, nil
}
