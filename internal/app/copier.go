package app

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"shotcopy/internal/domain"
	appErrors "shotcopy/internal/errors"
	"shotcopy/internal/logging"
)

// CopiedFunc is called once for every screenshot copied (or, in a dry run,
// every screenshot that would be copied).
type CopiedFunc func(shot domain.Screenshot)

// Copier gathers the screenshots of every instance into one flat folder.
// It never overwrites: a destination name that already exists is skipped.
type Copier struct {
	FS       FileSystem
	Exif     ExifReader
	Logger   logging.Logger
	DryRun   bool
	OnCopied CopiedFunc
}

// Instances lists the instance directories under sourceRoot/instances.
// Order follows the directory listing and carries no meaning.
func (c *Copier) Instances(ctx context.Context, sourceRoot string) ([]domain.Instance, error) {
	if c.FS == nil {
		return nil, errors.New("copier requires FS")
	}

	dir := domain.InstancesDir(sourceRoot)
	entries, err := c.FS.ReadDir(dir)
	if err != nil {
		return nil, appErrors.Wrap(appErrors.IOFailure, "list instances", dir, err)
	}

	var instances []domain.Instance
	for _, entry := range entries {
		info := c.follow(filepath.Join(dir, entry.Name()), entry)
		if !info.IsDir() {
			continue
		}
		instances = append(instances, domain.NewInstance(dir, entry.Name()))
	}
	return instances, nil
}

// Copy runs one copy pass. Only a failure to list the instances is returned
// as an error; per-file and per-instance failures are recorded in the report
// and the pass carries on.
func (c *Copier) Copy(ctx context.Context, sourceRoot, destinationRoot string) (domain.Report, error) {
	stop := c.Logger.Measure("Copy pass")
	defer stop()

	instances, err := c.Instances(ctx, sourceRoot)
	if err != nil {
		return domain.Report{}, err
	}

	report := domain.Report{Instances: len(instances), DryRun: c.DryRun}
	planned := map[string]bool{}

	for _, inst := range instances {
		hasMedia, err := c.hasMediaDir(inst)
		if err == nil && !hasMedia {
			c.Logger.Debug("instance has no screenshots folder", zap.String("instance", inst.Name), zap.String("path", inst.Path))
			continue
		}
		var entries []fs.FileInfo
		if err == nil {
			entries, err = c.FS.ReadDir(inst.MediaDir)
		}
		if err != nil {
			c.Logger.Warn("cannot list screenshots", zap.String("path", inst.MediaDir), zap.Error(err))
			report.AddFailure(inst.MediaDir, err)
			continue
		}
		report.InstancesWithMedia++

		for _, entry := range entries {
			src := filepath.Join(inst.MediaDir, entry.Name())
			info := c.follow(src, entry)
			if !info.Mode().IsRegular() {
				continue
			}
			c.copyOne(ctx, &report, planned, domain.NewScreenshot(src, info.Size()), destinationRoot, info)
		}
	}

	c.Logger.Verbosef("Copied %d, skipped %d, failed %d across %d instances", report.Copied, report.Skipped, report.Failed, report.Instances)
	return report, nil
}

func (c *Copier) copyOne(ctx context.Context, report *domain.Report, planned map[string]bool, shot domain.Screenshot, destinationRoot string, info fs.FileInfo) {
	dst := filepath.Join(destinationRoot, shot.Name)

	exists, err := c.FS.Exists(dst)
	if err != nil {
		c.Logger.Warn("cannot check destination", zap.String("path", dst), zap.Error(err))
		report.AddFailure(shot.SourcePath, err)
		return
	}
	if exists || planned[dst] {
		c.Logger.Debug("already present, skipping", zap.String("name", shot.Name))
		report.Skipped++
		return
	}

	if c.DryRun {
		planned[dst] = true
	} else {
		n, err := c.FS.CopyFile(shot.SourcePath, dst)
		if errors.Is(err, fs.ErrExist) {
			report.Skipped++
			return
		}
		if err != nil {
			c.Logger.Warn("copy failed", zap.String("source", shot.SourcePath), zap.Error(err))
			report.AddFailure(shot.SourcePath, err)
			return
		}
		shot.Size = n
	}

	shot.TakenAt = c.takenAt(ctx, shot.SourcePath, info)
	report.Copied++
	report.Bytes += shot.Size
	report.Observe(shot.TakenAt)
	if c.OnCopied != nil {
		c.OnCopied(shot)
	}
}

// hasMediaDir reports whether the instance has a screenshots directory. A
// missing path, or one blocked by a regular file (ENOTDIR), counts as absent.
func (c *Copier) hasMediaDir(inst domain.Instance) (bool, error) {
	info, err := c.FS.Stat(inst.MediaDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// takenAt prefers EXIF, then the launcher's file name, then the mtime.
func (c *Copier) takenAt(ctx context.Context, path string, info fs.FileInfo) time.Time {
	if c.Exif != nil {
		if t, err := c.Exif.DateTimeOriginal(ctx, path); err == nil {
			return t
		}
	}
	if t, ok := domain.TimeFromName(info.Name()); ok {
		return t
	}
	return info.ModTime()
}

// follow resolves symlinked entries so linked instances and screenshots are
// treated like the real thing.
func (c *Copier) follow(path string, info fs.FileInfo) fs.FileInfo {
	if info.Mode()&fs.ModeSymlink == 0 {
		return info
	}
	target, err := c.FS.Stat(path)
	if err != nil {
		return info
	}
	return target
}
