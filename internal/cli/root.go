package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"shotcopy/internal/app"
	"shotcopy/internal/config"
	appErrors "shotcopy/internal/errors"
	"shotcopy/internal/infra/exif"
	infrafs "shotcopy/internal/infra/fs"
	"shotcopy/internal/logging"
	"shotcopy/internal/presentation"
	"shotcopy/internal/prompt"
)

const programName = "shotcopy"

// Deps are the process resources a run works with.
type Deps struct {
	FS      afero.Fs
	In      io.Reader
	Out     io.Writer
	Err     io.Writer
	Version string
}

// NewRootCommand builds the shotcopy command.
func NewRootCommand(deps Deps) *cobra.Command {
	var opts config.Options

	cmd := &cobra.Command{
		Use:   programName + " [MultiMC folder] [output folder]",
		Short: "Gather the screenshots of every MultiMC instance into one folder",
		Long: `shotcopy copies the screenshots of every instance found under
<MultiMC folder>/instances/*/.minecraft/screenshots into a single output folder.

Files whose name already exists in the output folder are left alone. Without
both folders on the command line, shotcopy asks for them.`,
		Args:          cobra.ArbitraryArgs,
		Version:       deps.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), deps, args, opts)
		},
	}
	cmd.SetIn(deps.In)
	cmd.SetOut(deps.Out)
	cmd.SetErr(deps.Err)

	flags := cmd.Flags()
	addYesFlag(flags, &opts)
	addNonInteractiveFlag(flags, &opts)
	addDryRunFlag(flags, &opts)
	addVerboseFlag(flags, &opts)
	addLogLevelFlag(flags, &opts)
	addWaitFlag(flags, &opts)

	return cmd
}

// Execute runs the command and returns the process exit code.
func Execute(deps Deps, args []string) int {
	cmd := NewRootCommand(deps)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(deps.Err, appErrors.UserMessage(err))
		return 1
	}
	return 0
}

func run(ctx context.Context, deps Deps, args []string, opts config.Options) error {
	if opts.Verbose {
		opts.LogLevel = logging.LevelDebug
	}
	logger, err := logging.New(deps.Err, opts.LogLevel)
	if err != nil {
		return appErrors.Wrap(appErrors.InvalidConfig, "log level", "", err)
	}
	defer logger.Sync()

	printer := presentation.NewPrinter(deps.Out, opts.Verbose)
	prompter := prompt.New(deps.In, deps.Out)
	prompter.Style = printer.PromptStyle()

	printer.PrintBanner(deps.Version)

	resolver := config.Resolver{
		FS:       deps.FS,
		Prompter: prompter,
		Printer:  printer,
		Logger:   logger,
		Program:  programName,
	}
	cfg, err := resolver.Resolve(args, opts)
	if err != nil {
		return err
	}

	proceed, err := resolver.Confirm(cfg)
	if err != nil {
		return err
	}
	if proceed {
		onCopied := printer.PrintCopied
		if cfg.DryRun {
			onCopied = printer.PrintWouldCopy
		}
		copier := app.Copier{
			FS:       infrafs.AferoFS{Fs: deps.FS},
			Exif:     exif.Reader{Fs: deps.FS},
			Logger:   logger,
			DryRun:   cfg.DryRun,
			OnCopied: onCopied,
		}
		report, err := copier.Copy(ctx, cfg.SourceRoot, cfg.DestinationRoot)
		if err != nil {
			return err
		}
		printer.PrintSummary(report)
	}

	if cfg.Wait {
		printer.PrintExitHint()
		_, _ = prompter.Ask("")
	}
	return nil
}
