package config

import (
	"os"

	"github.com/spf13/afero"
)

// failingMkdirFs refuses to create one directory.
type failingMkdirFs struct {
	afero.Fs
	fail string
}

func (f *failingMkdirFs) MkdirAll(path string, perm os.FileMode) error {
	if path == f.fail {
		return &os.PathError{Op: "mkdir", Path: path, Err: os.ErrPermission}
	}
	return f.Fs.MkdirAll(path, perm)
}
