package domain

import (
	"path/filepath"
	"strings"
	"time"
)

type Screenshot struct {
	SourcePath string
	Name       string
	Size       int64
	TakenAt    time.Time
}

func NewScreenshot(sourcePath string, size int64) Screenshot {
	return Screenshot{
		SourcePath: sourcePath,
		Name:       filepath.Base(sourcePath),
		Size:       size,
	}
}

// launcherNameLayout is the file name the game gives a screenshot,
// e.g. 2024-03-09_17.42.08.png (a "_2" suffix is added on collisions).
const launcherNameLayout = "2006-01-02_15.04.05"

// TimeFromName parses the capture time encoded in a launcher screenshot name.
func TimeFromName(name string) (time.Time, bool) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if len(base) < len(launcherNameLayout) {
		return time.Time{}, false
	}
	parsed, err := time.ParseInLocation(launcherNameLayout, base[:len(launcherNameLayout)], time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
