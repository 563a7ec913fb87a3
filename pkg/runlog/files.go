package runlog

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Entry describes a run-log file on disk.
type Entry struct {
	ID      string
	Path    string
	Size    int64
	ModTime time.Time
}

// List returns the run logs in dir, newest first. A missing directory
// yields no entries.
func List(dir string) ([]Entry, error) {
	ents, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var out []Entry
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, Entry{
			ID:      strings.TrimSuffix(e.Name(), ext),
			Path:    filepath.Join(dir, e.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	slices.SortFunc(out, func(a, b Entry) int { return b.ModTime.Compare(a.ModTime) })
	return out, nil
}

// Clear removes every run log in dir and returns how many were deleted.
func Clear(dir string) (int, error) {
	entries, err := List(dir)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, e := range entries {
		if err := os.Remove(e.Path); err == nil {
			count++
		}
	}
	return count, nil
}
