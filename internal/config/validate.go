package config

import (
	"github.com/spf13/afero"

	"shotcopy/internal/domain"
	appErrors "shotcopy/internal/errors"
)

// ValidateSource checks that path is a launcher root with at least one entry
// under its instances folder. Conditions are checked in order and the first
// failure is returned.
func ValidateSource(fsys afero.Fs, path string) error {
	const op = "validate source"
	if path == "" {
		return appErrors.New(appErrors.EmptySourcePath, op, path)
	}

	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return appErrors.Wrap(appErrors.IOFailure, op, path, err)
	}
	if !exists {
		return appErrors.New(appErrors.SourceNotFound, op, path)
	}

	instances := domain.InstancesDir(path)
	isDir, err := afero.DirExists(fsys, instances)
	if err != nil {
		// e.g. the source root is a regular file
		return appErrors.Wrap(appErrors.MissingInstancesDirectory, op, instances, err)
	}
	if !isDir {
		return appErrors.New(appErrors.MissingInstancesDirectory, op, instances)
	}

	empty, err := afero.IsEmpty(fsys, instances)
	if err != nil {
		return appErrors.Wrap(appErrors.IOFailure, op, instances, err)
	}
	if empty {
		return appErrors.New(appErrors.NoInstancesPresent, op, instances)
	}
	return nil
}

// EnsureDestination creates path, parents included, when it is missing.
// An existing path is accepted as is, even if it is not a directory.
func EnsureDestination(fsys afero.Fs, path string) (created bool, err error) {
	const op = "create output folder"
	if path == "" {
		return false, appErrors.New(appErrors.EmptyDestinationPath, op, path)
	}

	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return false, appErrors.Wrap(appErrors.DestinationCreateFailed, op, path, err)
	}
	if exists {
		return false, nil
	}

	if err := fsys.MkdirAll(path, 0o755); err != nil {
		return false, appErrors.Wrap(appErrors.DestinationCreateFailed, op, path, err)
	}
	return true, nil
}
