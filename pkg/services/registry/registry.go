package registry

import (
	"context"

	"github.com/de-tools/health-guide/pkg/services/intake"
)

// ProfileRegistry resolves named, saved form submissions.
type ProfileRegistry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetForm(ctx context.Context, profile string) (intake.Form, error)
}
