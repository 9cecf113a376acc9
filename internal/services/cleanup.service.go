package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

// ErrCleanupUnsupported is returned when no temp directories apply to the platform
var ErrCleanupUnsupported = errors.New("temp file cleanup is windows-specific")

// DefaultTempDirs lists the directories cleared when none are configured.
// Only Windows has defaults.
func DefaultTempDirs(goos string) []string {
	if goos != "windows" {
		return nil
	}
	var dirs []string
	if temp := os.Getenv("TEMP"); temp != "" {
		dirs = append(dirs, temp)
	}
	if windir := os.Getenv("WINDIR"); windir != "" {
		dirs = append(dirs, filepath.Join(windir, "Temp"))
	}
	return dirs
}

// TempCleaner removes regular files from the top level of a set of directories
type TempCleaner struct {
	fs   afero.Fs
	dirs []string
}

func NewTempCleaner(fs afero.Fs, dirs []string) *TempCleaner {
	return &TempCleaner{fs: fs, dirs: dirs}
}

// Clear deletes every regular file directly under the configured
// directories. Missing directories are skipped. Files that cannot be
// removed are skipped too; their errors come back aggregated next to the
// count of files that were deleted.
func (c *TempCleaner) Clear() (int, error) {
	if len(c.dirs) == 0 {
		return 0, ErrCleanupUnsupported
	}

	var (
		deleted int
		errs    *multierror.Error
	)
	for _, dir := range c.dirs {
		entries, err := afero.ReadDir(c.fs, dir)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("listing %s: %w", dir, err))
			continue
		}

		for _, entry := range entries {
			if !entry.Mode().IsRegular() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if err := c.fs.Remove(path); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("removing %s: %w", path, err))
				continue
			}
			deleted++
		}
	}

	return deleted, errs.ErrorOrNil()
}
