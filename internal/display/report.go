// Package display renders build diagnostics for the terminal.
//
// Warnings are printed in yellow and fatal messages in red, each tagged with
// the stage or rule that produced it, followed by a one-line status:
//
//	⚠ [alias] Unknown parameter: foo
//	✓ Parameters are valid (1 warning, 1 unknown parameter)
//
// Color is only used when requested and the writer is a terminal.
package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/boostcfg/internal/diagnostic"
)

// ColorEnabled reports whether output to w should be colored.
func ColorEnabled(w io.Writer, preferred bool) bool {
	if !preferred || color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Printer writes diagnostics and status lines.
type Printer struct {
	out     io.Writer
	warn    *color.Color
	fatal   *color.Color
	success *color.Color
}

// NewPrinter returns a Printer writing to out, colored when useColor is set.
func NewPrinter(out io.Writer, useColor bool) *Printer {
	p := &Printer{
		out:     out,
		warn:    color.New(color.FgYellow),
		fatal:   color.New(color.FgRed, color.Bold),
		success: color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.warn, p.fatal, p.success} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Diagnostics prints every warning and fatal diagnostic in emission order.
// Informational messages are left to the logger.
func (p *Printer) Diagnostics(diags *diagnostic.Diagnostics) {
	for _, d := range diags.Items {
		switch d.Severity {
		case diagnostic.SeverityWarning:
			fmt.Fprintln(p.out, p.warn.Sprint("⚠ "+d.String()))
		case diagnostic.SeverityFatal:
			fmt.Fprintln(p.out, p.fatal.Sprint("✗ "+d.String()))
		}
	}
}

// Success prints a green check line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.out, p.success.Sprint("✓ "+fmt.Sprintf(format, args...)))
}

// Failure prints a red cross line.
func (p *Printer) Failure(format string, args ...any) {
	fmt.Fprintln(p.out, p.fatal.Sprint("✗ "+fmt.Sprintf(format, args...)))
}
