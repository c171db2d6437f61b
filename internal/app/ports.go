package app

import (
	"context"
	"io/fs"
	"time"
)

type FileSystem interface {
	ReadDir(path string) ([]fs.FileInfo, error)
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) (bool, error)
	CopyFile(src, dst string) (int64, error)
}

type ExifReader interface {
	DateTimeOriginal(ctx context.Context, path string) (time.Time, error)
}
