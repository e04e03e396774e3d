package commands

import (
	"context"
	"io"

	"github.com/de-tools/health-guide/pkg/runtime/terminal/export"
	"github.com/de-tools/health-guide/pkg/services/config"
	"github.com/de-tools/health-guide/pkg/services/registry"
	"github.com/de-tools/health-guide/pkg/services/report"
	"github.com/rs/zerolog"
)

// Runtime carries what the commands share. Config and Logger are populated
// by the root command before any subcommand runs.
type Runtime struct {
	Generator report.Generator
	Config    *config.Config
	Logger    zerolog.Logger
	In        io.ReadCloser
	Out       io.Writer
	Err       io.Writer

	// NewLineReader opens the interactive prompt; tests swap it out.
	NewLineReader func(rt *Runtime) (LineReader, error)
}

func (rt *Runtime) reporter(format string) (*export.Reporter, error) {
	if format == "" && rt.Config != nil {
		format = rt.Config.Report.Format
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return export.NewReporter(rt.Out, f), nil
}

func (rt *Runtime) profiles(path string) (registry.ProfileRegistry, error) {
	if path == "" && rt.Config != nil {
		path = rt.Config.Report.ProfilesPath
	}
	if path == "" {
		return nil, errNoProfileFile
	}
	return registry.NewProfileRegistry(path)
}

func (rt *Runtime) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &rt.Logger
}
