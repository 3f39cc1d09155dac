package listing

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Lister drives the listing pipeline over one or more requested paths.
type Lister struct {
	cfg    Config
	fmtr   *Formatter
	out    io.Writer
	errOut io.Writer
}

// NewLister returns a Lister writing listings to out and failure reports to
// errOut.
func NewLister(cfg Config, out, errOut io.Writer) *Lister {
	return &Lister{
		cfg:    cfg,
		fmtr:   NewFormatter(cfg),
		out:    out,
		errOut: errOut,
	}
}

// Run lists each requested path in order. When more than one path is given,
// each listing is preceded by a blank line and a "path:" header.
//
// The first path that cannot be listed is reported on the error writer as
// "Error listing '<path>': <reason>" and ends the run with that error;
// remaining paths are not attempted. Failures deeper than a requested path
// (unreadable subdirectories during recursion) are handled inside the walk
// and never reach here.
func (l *Lister) Run(paths []string) error {
	multi := len(paths) > 1

	for _, path := range paths {
		if multi {
			fmt.Fprintf(l.out, "\n%s:\n", path)
		}
		if err := l.listDirectory(path, 0); err != nil {
			fmt.Fprintf(l.errOut, "Error listing '%s': %v\n", path, err)
			return err
		}
	}
	return nil
}

// listDirectory runs the full pipeline for one directory: collect, sort,
// render every entry, then descend into subdirectories when recursion is on.
// The directory's own output is complete before any child is entered, and
// recursion walks the already-sorted slice so children appear in display
// order.
func (l *Lister) listDirectory(path string, depth int) error {
	entries, err := Collect(path, l.cfg.ShowHidden)
	if err != nil {
		return err
	}

	Sort(entries, l.cfg.SortKey, l.cfg.Reverse)

	for _, e := range entries {
		fmt.Fprintln(l.out, l.fmtr.Render(e, depth))
	}

	if !l.cfg.Recursive {
		return nil
	}

	indent := strings.Repeat("  ", depth)
	for _, e := range entries {
		if !e.IsDir {
			continue
		}
		child := filepath.Join(path, e.Name)
		fmt.Fprintf(l.out, "\n%s%s:\n", indent, child)
		// Best-effort descent: an unreadable subtree is skipped and the
		// remaining siblings still list.
		_ = l.listDirectory(child, depth+1)
	}
	return nil
}
