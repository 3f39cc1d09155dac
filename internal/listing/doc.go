// Package listing implements the directory listing pipeline behind the ls
// subcommand: collect entries, filter, sort, render, and optionally recurse.
//
// The pipeline runs in a fixed order for every directory visited:
//
//	Collect -> Sort -> render all entries -> descend into subdirectories
//
// A directory's output is always complete before any child directory is
// entered, so recursive output stays coherent. Each visited directory gets a
// fresh entry slice; nothing is cached across directories or invocations.
//
// # Error policy
//
// Failures are handled at three levels:
//
//   - A requested path that does not exist or is not a directory is fatal for
//     the whole run (reported as "Error listing '<path>': ..." on the error
//     writer).
//   - A single entry whose metadata cannot be read is skipped; the rest of the
//     directory still lists. Because metadata is fetched once at collection
//     time, the sorter never sees an entry with a missing sort key.
//   - A subdirectory that cannot be listed during recursive descent is skipped
//     silently; listing continues with its siblings.
//
// # Color
//
// Styling is controlled solely by Config.UseColor, threaded through every
// render call. The formatter overrides fatih/color's process-global TTY
// detection so that the flag stays authoritative even when output is piped.
package listing
