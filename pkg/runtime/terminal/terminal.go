package terminal

import (
	"errors"
	"io"
	"os"

	"github.com/de-tools/health-guide/pkg/logging"
	"github.com/de-tools/health-guide/pkg/runtime/terminal/commands"
	"github.com/de-tools/health-guide/pkg/services/config"
	"github.com/de-tools/health-guide/pkg/services/intake"
	"github.com/de-tools/health-guide/pkg/services/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	runtime *commands.Runtime
	rootCmd *cobra.Command

	cfgPath string
	verbose bool
}

// Options contain configuration for the CLI
type Options struct {
	Generator report.Generator
	Input     io.ReadCloser
	Output    io.Writer
	ErrOutput io.Writer
	// LineReader overrides the interactive prompt backend.
	LineReader func(rt *commands.Runtime) (commands.LineReader, error)
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}
	if opts.Generator == nil {
		opts.Generator = report.NewGenerator()
	}

	cli := &CLI{
		runtime: &commands.Runtime{
			Generator:     opts.Generator,
			Logger:        zerolog.Nop(),
			In:            opts.Input,
			Out:           opts.Output,
			Err:           opts.ErrOutput,
			NewLineReader: opts.LineReader,
		},
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

// Execute runs the command line and reports failures on the error output.
// Invalid input is reported as an input alert.
func (cli *CLI) Execute() error {
	err := cli.rootCmd.Execute()
	if err != nil {
		commands.Alert(cli.runtime.Err, err)
	}
	return err
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "health",
		Short:             "Personal health metrics and recommendations",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: cli.setup,
	}

	cmd.SetIn(cli.runtime.In)
	cmd.SetOut(cli.runtime.Out)
	cmd.SetErr(cli.runtime.Err)

	cmd.PersistentFlags().StringVarP(&cli.cfgPath, "config", "c", "", "Path to a YAML config file")
	cmd.PersistentFlags().BoolVarP(&cli.verbose, "verbose", "v", false, "Log diagnostics to stderr")

	cmd.AddCommand(commands.NewReportCmd(cli.runtime))
	cmd.AddCommand(commands.NewInteractiveCmd(cli.runtime))
	cmd.AddCommand(commands.NewCategoriesCmd(cli.runtime))
	cmd.AddCommand(commands.NewProfilesCmd(cli.runtime))

	return cmd
}

func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(cli.cfgPath)
	if err != nil {
		return err
	}
	cli.runtime.Config = cfg

	if !cli.verbose {
		return nil
	}
	logger, err := logging.New(cli.runtime.Err, cfg.Log.Level)
	if err != nil {
		return err
	}
	cli.runtime.Logger = logger
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}

// IsInputError reports whether err came from rejected user input.
func IsInputError(err error) bool {
	return errors.Is(err, intake.ErrInvalidInput)
}
