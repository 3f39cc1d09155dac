package listing

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Entry is one immediate child of a listed directory, with the metadata the
// rest of the pipeline needs. Entries are plain values; a slice of them lives
// only for the listing of the directory it came from.
type Entry struct {
	// Name is the entry's base name, never "." or "..".
	Name string

	// Size is the byte count for regular files. Directories record 0;
	// their contents are not summed.
	Size uint64

	// Mode holds the raw permission bits plus the file-type bits, as
	// reported by Lstat (symlinks are not followed).
	Mode os.FileMode

	// ModTime is the last modification time.
	ModTime time.Time

	// IsDir and IsSymlink classify the entry. At most one is true; both
	// false means a regular file or other special file.
	IsDir     bool
	IsSymlink bool
}

// NotDirectoryError reports that a requested path exists but is not a
// directory. It is fatal for that top-level path.
type NotDirectoryError struct {
	Path string
}

func (e *NotDirectoryError) Error() string {
	return fmt.Sprintf("'%s' is not a directory", e.Path)
}

// Collect enumerates the immediate children of dir and returns one Entry per
// child, in directory-name order. When showHidden is false, entries whose
// name starts with "." are excluded before any metadata is read.
//
// A child whose metadata cannot be fetched (removed mid-listing, stale NFS
// handle) is skipped; the rest of the directory still lists. Only a path that
// is missing, unreadable, or not a directory fails the whole collection.
func Collect(dir string, showHidden bool) ([]Entry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &NotDirectoryError{Path: dir}
	}

	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		name := de.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}

		fi, err := de.Info()
		if err != nil {
			// Best-effort listing: skip the entry, keep the directory.
			continue
		}

		mode := fi.Mode()
		entry := Entry{
			Name:      name,
			Mode:      mode,
			ModTime:   fi.ModTime(),
			IsDir:     mode.IsDir(),
			IsSymlink: mode&os.ModeSymlink != 0,
		}
		if !entry.IsDir {
			entry.Size = uint64(fi.Size())
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
