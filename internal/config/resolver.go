package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	appErrors "shotcopy/internal/errors"
	"shotcopy/internal/logging"
	"shotcopy/internal/presentation"
	"shotcopy/internal/prompt"
)

const (
	sourceLabel      = "Please enter the MultiMC folder path: "
	destinationLabel = "Please enter the desired output folder path: "
)

// Resolver turns command line arguments, and operator answers when those are
// missing or invalid, into a Config.
type Resolver struct {
	FS       afero.Fs
	Prompter *prompt.Prompter
	Printer  presentation.Printer
	Logger   logging.Logger
	Program  string
}

// Resolve validates the source and destination folders, asking again for
// each one until it is valid. With opts.NonInteractive the first problem is
// returned instead.
func (r *Resolver) Resolve(args []string, opts Options) (Config, error) {
	var source, destination string
	interactive := len(args) != 2
	if interactive {
		if opts.NonInteractive {
			return Config{}, appErrors.Wrap(appErrors.InvalidConfig, "arguments", "",
				fmt.Errorf("expected <MultiMC folder> <output folder>, got %d arguments", len(args)))
		}
		r.Printer.PrintUsage(r.Program)
	} else {
		source, destination = args[0], args[1]
	}

	source, err := r.settle(source, interactive, opts, sourceLabel, func(path string) error {
		return ValidateSource(r.FS, path)
	})
	if err != nil {
		return Config{}, err
	}

	destination, err = r.settle(destination, interactive, opts, destinationLabel, func(path string) error {
		created, err := EnsureDestination(r.FS, path)
		if created {
			r.Printer.PrintCreated(path)
		}
		return err
	})
	if err != nil {
		return Config{}, err
	}

	r.Logger.Debug("configuration resolved", zap.String("source", source), zap.String("destination", destination))
	return Config{SourceRoot: source, DestinationRoot: destination, Options: opts}, nil
}

// Confirm asks whether to go ahead. It returns false after printing the
// cancellation notice when the operator declines.
func (r *Resolver) Confirm(cfg Config) (bool, error) {
	if cfg.Yes {
		return true, nil
	}
	r.Printer.PrintConfirmSpacing()
	ok, err := r.Prompter.YesNo(r.Printer.ConfirmLabel(cfg.SourceRoot, cfg.DestinationRoot))
	if err != nil {
		return false, inputError(err)
	}
	if !ok {
		r.Printer.PrintCancelled()
	}
	return ok, nil
}

func (r *Resolver) settle(path string, ask bool, opts Options, label string, validate func(string) error) (string, error) {
	for {
		if ask {
			answer, err := r.Prompter.AskNonEmpty(label)
			if err != nil {
				return "", inputError(err)
			}
			path = answer
		}

		err := validate(path)
		if err == nil {
			return path, nil
		}
		if opts.NonInteractive {
			return "", err
		}
		r.Logger.Debug("rejected folder", zap.String("path", path), zap.Error(err))
		r.Printer.PrintError(err)
		ask = true
	}
}

func inputError(err error) error {
	if errors.Is(err, io.EOF) {
		return appErrors.Wrap(appErrors.InputClosed, "prompt", "", err)
	}
	return appErrors.Wrap(appErrors.IOFailure, "prompt", "stdin", err)
}
