package listing

import "fmt"

// SortKey selects the entry field used for ordering.
type SortKey int

const (
	// SortByName orders entries lexicographically by name (the default).
	SortByName SortKey = iota
	// SortByTime orders entries by modification time, oldest first.
	SortByTime
	// SortBySize orders entries by recorded byte size, smallest first.
	SortBySize
)

// ParseSortKey converts a user-supplied sort key name into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "name":
		return SortByName, nil
	case "time":
		return SortByTime, nil
	case "size":
		return SortBySize, nil
	default:
		return SortByName, fmt.Errorf("invalid sort key %q (must be name, time, or size)", s)
	}
}

// String returns the flag spelling of the sort key.
func (k SortKey) String() string {
	switch k {
	case SortByTime:
		return "time"
	case SortBySize:
		return "size"
	default:
		return "name"
	}
}

// Config is the immutable per-invocation configuration for a listing run.
// It is produced by the command layer (flags plus config-file defaults) and
// consumed read-only by every pipeline stage.
type Config struct {
	// ShowHidden includes entries whose name starts with "." When false,
	// hidden entries never reach sorting, rendering, or recursion.
	ShowHidden bool

	// LongFormat switches rendering to the multi-field line
	// (permissions, size, mtime, name).
	LongFormat bool

	// HumanReadable scales byte sizes with binary-unit suffixes in long format.
	HumanReadable bool

	// SortKey chooses the comparison field.
	SortKey SortKey

	// Reverse inverts the sort direction.
	Reverse bool

	// Recursive descends into subdirectories after listing each directory.
	Recursive bool

	// UseColor enables styled directory and symlink names. Resolved by the
	// caller; "auto" TTY detection never happens inside the pipeline.
	UseColor bool
}
