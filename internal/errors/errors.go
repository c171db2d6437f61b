package errors

import (
	stderrors "errors"
	"fmt"
)

type Kind string

const (
	EmptySourcePath           Kind = "empty_source_path"
	SourceNotFound            Kind = "source_not_found"
	MissingInstancesDirectory Kind = "missing_instances_directory"
	NoInstancesPresent        Kind = "no_instances_present"
	EmptyDestinationPath      Kind = "empty_destination_path"
	DestinationCreateFailed   Kind = "destination_create_failed"
	InputClosed               Kind = "input_closed"
	InvalidConfig             Kind = "invalid_config"
	IOFailure                 Kind = "io_failure"
)

type AppError struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Wrap(kind Kind, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Kind: kind,
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// New builds an error of the given kind that has no underlying cause.
func New(kind Kind, op, path string) error {
	return &AppError{Kind: kind, Op: op, Path: path}
}

// KindOf returns the kind of the first AppError in err's chain, or "".
func KindOf(err error) Kind {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

func UserMessage(err error) string {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return err.Error()
	}
	switch appErr.Kind {
	case EmptySourcePath:
		return "No input given for the MultiMC folder"
	case SourceNotFound:
		return "The MultiMC folder provided does not exist"
	case MissingInstancesDirectory:
		return "The MultiMC folder does not contain an 'instances' folder"
	case NoInstancesPresent:
		return "The 'instances' folder does not contain any instance folders"
	case EmptyDestinationPath:
		return "No value given for the output folder"
	case DestinationCreateFailed:
		return fmt.Sprintf("Failed to create output folder: %v", appErr.Err)
	case InputClosed:
		return "Input closed before a valid answer was given"
	case InvalidConfig:
		return fmt.Sprintf("Invalid configuration: %v", appErr.Err)
	case IOFailure:
		return fmt.Sprintf("I/O error: %s: %v", appErr.Path, appErr.Err)
	default:
		return fmt.Sprintf("Unexpected error: %v", appErr.Err)
	}
}
