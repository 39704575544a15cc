// Package ui renders the progress and result messages every top-level
// command prints, mirroring the split between quiet and --verbose output in
// restic's internal/ui package.
package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
)

// Printer writes informational, warning and fatal-error messages to the
// configured streams. Warnings and errors always print; Info only prints
// when Verbose is set, matching the CLI's --verbose flag.
type Printer struct {
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewPrinter returns a Printer that writes to os.Stdout/os.Stderr.
func NewPrinter(verbose bool) *Printer {
	return &Printer{Verbose: verbose, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Info prints a message only when verbose output is enabled.
func (p *Printer) Info(format string, args ...interface{}) {
	if !p.Verbose {
		return
	}
	fmt.Fprintf(p.Stdout, format+"\n", args...)
}

// Result prints a message unconditionally to stdout.
func (p *Printer) Result(format string, args ...interface{}) {
	fmt.Fprintf(p.Stdout, format+"\n", args...)
}

// Warn prints a non-fatal warning to stderr. Used for per-file errors that
// are logged and skipped when --abort is not set.
func (p *Printer) Warn(format string, args ...interface{}) {
	fmt.Fprintf(p.Stderr, "warning: "+format+"\n", args...)
}

// Error prints a fatal error with the §7 prefix.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.Stderr, "*** ERROR : %v\n", err)
}

// FormatBytes renders a byte count for the list command's table,
// delegating to go-humanize rather than restic's own hand-rolled formatter.
func FormatBytes(n uint64) string {
	return humanize.Bytes(n)
}

// FormatTime renders a snapshot timestamp for table output.
func FormatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}
