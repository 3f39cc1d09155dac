package listing

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// mtimeLayout matches the classic long-listing timestamp: abbreviated month,
// zero-padded day, 24h clock.
const mtimeLayout = "Jan 02 15:04"

// Formatter renders sorted entries as display lines according to one Config.
type Formatter struct {
	cfg Config

	// Name styles: directories get emphasis, symlinks an accent color.
	dir  *color.Color
	link *color.Color
}

// NewFormatter builds a Formatter for cfg. The UseColor flag is applied to
// each style explicitly, overriding fatih/color's process-global TTY
// detection, so --color=always colorizes piped output and --color=never
// stays plain on a terminal.
func NewFormatter(cfg Config) *Formatter {
	f := &Formatter{
		cfg:  cfg,
		dir:  color.New(color.FgBlue, color.Bold),
		link: color.New(color.FgCyan),
	}
	if cfg.UseColor {
		f.dir.EnableColor()
		f.link.EnableColor()
	} else {
		f.dir.DisableColor()
		f.link.DisableColor()
	}
	return f
}

// Render converts one entry into its display line, indented two spaces per
// recursion depth.
func (f *Formatter) Render(e Entry, depth int) string {
	indent := strings.Repeat("  ", depth)
	name := f.styleName(e)

	if !f.cfg.LongFormat {
		return indent + name
	}

	return fmt.Sprintf("%s%s %8s %s %s",
		indent,
		FormatPermissions(e.Mode),
		f.sizeField(e.Size),
		e.ModTime.Local().Format(mtimeLayout),
		name,
	)
}

// styleName applies the semantic style and type suffix. The "/" and "@"
// suffixes are content markers, not styling: they appear even with color off.
func (f *Formatter) styleName(e Entry) string {
	switch {
	case e.IsDir:
		return f.dir.Sprint(e.Name) + "/"
	case e.IsSymlink:
		return f.link.Sprint(e.Name) + "@"
	default:
		return e.Name
	}
}

func (f *Formatter) sizeField(size uint64) string {
	if f.cfg.HumanReadable {
		return FormatSize(size)
	}
	return strconv.FormatUint(size, 10)
}

// FormatPermissions renders mode as the 10-character permission string:
// a type char (d, l, or -) followed by rwx triplets for owner, group, other.
func FormatPermissions(mode os.FileMode) string {
	var buf [10]byte
	switch {
	case mode.IsDir():
		buf[0] = 'd'
	case mode&os.ModeSymlink != 0:
		buf[0] = 'l'
	default:
		buf[0] = '-'
	}

	const letters = "rwxrwxrwx"
	perm := mode.Perm()
	for i := 0; i < 9; i++ {
		if perm&(1<<uint(8-i)) != 0 {
			buf[i+1] = letters[i]
		} else {
			buf[i+1] = '-'
		}
	}
	return string(buf[:])
}

// FormatSize scales a byte count to the largest binary unit that keeps the
// value at least 1, with one decimal place. Values under 1024 print as plain
// bytes: "512B", "1023B", "1.0K", "2.3M", ...
func FormatSize(size uint64) string {
	const (
		kb = 1 << 10
		mb = kb << 10
		gb = mb << 10
		tb = gb << 10
	)

	switch {
	case size < kb:
		return fmt.Sprintf("%dB", size)
	case size < mb:
		return fmt.Sprintf("%.1fK", float64(size)/float64(kb))
	case size < gb:
		return fmt.Sprintf("%.1fM", float64(size)/float64(mb))
	case size < tb:
		return fmt.Sprintf("%.1fG", float64(size)/float64(gb))
	default:
		return fmt.Sprintf("%.1fT", float64(size)/float64(tb))
	}
}
