package fs

import (
	"io"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// AferoFS adapts an afero.Fs to the copy engine's FileSystem port.
type AferoFS struct {
	Fs afero.Fs
}

func (a AferoFS) ReadDir(path string) ([]fs.FileInfo, error) {
	return afero.ReadDir(a.Fs, path)
}

func (a AferoFS) Stat(path string) (fs.FileInfo, error) {
	return a.Fs.Stat(path)
}

func (a AferoFS) Exists(path string) (bool, error) {
	return afero.Exists(a.Fs, path)
}

// CopyFile copies src to dst, refusing to replace an existing dst.
// A pre-existing dst is reported as an error matching fs.ErrExist.
func (a AferoFS) CopyFile(src, dst string) (int64, error) {
	srcFile, err := a.Fs.Open(src)
	if err != nil {
		return 0, err
	}
	defer srcFile.Close()

	info, err := srcFile.Stat()
	if err != nil {
		return 0, err
	}

	dstFile, err := a.Fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(dstFile, srcFile)
	if err != nil {
		dstFile.Close()
		_ = a.Fs.Remove(dst)
		return n, err
	}
	if err := dstFile.Close(); err != nil {
		_ = a.Fs.Remove(dst)
		return n, err
	}
	return n, nil
}
