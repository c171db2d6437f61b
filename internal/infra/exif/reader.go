package exif

import (
	"context"
	"errors"
	"time"

	goexif "github.com/rwcarlsen/goexif/exif"
	"github.com/spf13/afero"
)

var ErrNoDateTime = errors.New("exif datetime not found")

// Reader extracts the capture time of an image through Fs. It is the first
// source the copier consults; screenshots without EXIF fall back to the
// launcher's file name, then to the file's modification time.
type Reader struct {
	Fs afero.Fs
}

func (r Reader) DateTimeOriginal(ctx context.Context, path string) (time.Time, error) {
	select {
	case <-ctx.Done():
		return time.Time{}, ctx.Err()
	default:
	}

	fsys := r.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	file, err := fsys.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer file.Close()

	x, err := goexif.Decode(file)
	if err != nil {
		return time.Time{}, err
	}

	if tag, err := x.Get(goexif.DateTimeOriginal); err == nil {
		if str, err := tag.StringVal(); err == nil {
			parsed, err := time.ParseInLocation("2006:01:02 15:04:05", str, time.Local)
			if err == nil {
				return parsed, nil
			}
		}
	}

	if parsed, err := x.DateTime(); err == nil {
		return parsed, nil
	}

	return time.Time{}, ErrNoDateTime
}
