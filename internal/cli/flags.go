package cli

import (
	"github.com/spf13/pflag"

	"shotcopy/internal/config"
	"shotcopy/internal/logging"
)

func addYesFlag(fs *pflag.FlagSet, opts *config.Options) string {
	const yes = "yes"
	fs.BoolVarP(&opts.Yes, yes, "y", false, "Copy without asking for confirmation")
	return yes
}

func addNonInteractiveFlag(fs *pflag.FlagSet, opts *config.Options) string {
	const nonInteractive = "non-interactive"
	fs.BoolVar(&opts.NonInteractive, nonInteractive, false,
		"Fail on an invalid folder instead of prompting for another one")
	return nonInteractive
}

func addDryRunFlag(fs *pflag.FlagSet, opts *config.Options) string {
	const dryRun = "dry-run"
	fs.BoolVarP(&opts.DryRun, dryRun, "d", false, "Report what would be copied without writing anything")
	return dryRun
}

func addVerboseFlag(fs *pflag.FlagSet, opts *config.Options) string {
	const verbose = "verbose"
	fs.BoolVarP(&opts.Verbose, verbose, "v", false, "Verbose output, implies --log-level=debug")
	return verbose
}

func addLogLevelFlag(fs *pflag.FlagSet, opts *config.Options) string {
	const logLevel = "log-level"
	fs.StringVar(&opts.LogLevel, logLevel, logging.LevelWarn,
		`Diagnostics written to stderr: "debug", "info", "warn", "error" or "none"`)
	return logLevel
}

func addWaitFlag(fs *pflag.FlagSet, opts *config.Options) string {
	const wait = "wait"
	fs.BoolVar(&opts.Wait, wait, false, "Wait for Return before exiting")
	return wait
}
