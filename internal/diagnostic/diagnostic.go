// Package diagnostic records the warnings and fatal errors raised while a
// parameter set is turned into a configuration.
//
// A Reporter sends every message to a logger.Logger and keeps a copy in a
// Diagnostics collection, so callers can inspect what happened without
// scraping log output.
package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harrison/boostcfg/internal/logger"
)

// ErrFatal is wrapped by every FatalError so callers can test with errors.Is.
var ErrFatal = errors.New("fatal configuration error")

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityFatal
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Diagnostic is a single recorded message.
type Diagnostic struct {
	Severity Severity
	// Code names the stage or rule that produced the message, e.g. "dedup" or "linear_tree".
	Code    string
	Message string
}

// String returns "[code] message".
func (d Diagnostic) String() string {
	if d.Code == "" {
		return d.Message
	}
	return fmt.Sprintf("[%s] %s", d.Code, d.Message)
}

// Diagnostics holds everything recorded during one build, in emission order.
type Diagnostics struct {
	Items []Diagnostic
}

// Add appends a diagnostic.
func (d *Diagnostics) Add(sev Severity, code, message string) {
	d.Items = append(d.Items, Diagnostic{Severity: sev, Code: code, Message: message})
}

// Warnings returns the warning diagnostics.
func (d *Diagnostics) Warnings() []Diagnostic {
	return d.filter(SeverityWarning)
}

// Infos returns the informational diagnostics.
func (d *Diagnostics) Infos() []Diagnostic {
	return d.filter(SeverityInfo)
}

// Fatals returns the fatal diagnostics. A failed build has exactly one.
func (d *Diagnostics) Fatals() []Diagnostic {
	return d.filter(SeverityFatal)
}

// WarningsFor returns the warnings produced by one code.
func (d *Diagnostics) WarningsFor(code string) []Diagnostic {
	var out []Diagnostic
	for _, item := range d.Items {
		if item.Severity == SeverityWarning && item.Code == code {
			out = append(out, item)
		}
	}
	return out
}

func (d *Diagnostics) filter(sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, item := range d.Items {
		if item.Severity == sev {
			out = append(out, item)
		}
	}
	return out
}

// HasFatal returns true if a fatal diagnostic was recorded.
func (d *Diagnostics) HasFatal() bool {
	return len(d.Fatals()) > 0
}

// Summary renders one line per warning and fatal diagnostic.
func (d *Diagnostics) Summary() string {
	var parts []string
	for _, item := range d.Items {
		if item.Severity >= SeverityWarning {
			parts = append(parts, fmt.Sprintf("%s: %s", item.Severity, item))
		}
	}
	return strings.Join(parts, "\n")
}

// FatalError aborts a configuration build.
type FatalError struct {
	Code string
	Msg  string
}

func (e *FatalError) Error() string {
	if e.Code == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap lets errors.Is(err, ErrFatal) match.
func (e *FatalError) Unwrap() error {
	return ErrFatal
}

// Reporter logs and records diagnostics for one build.
type Reporter struct {
	Log   logger.Logger
	Diags Diagnostics
}

// NewReporter returns a Reporter writing to log. A nil log discards output.
func NewReporter(log logger.Logger) *Reporter {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Reporter{Log: log}
}

// Debug logs a debug message. Debug messages are not recorded.
func (r *Reporter) Debug(format string, args ...any) {
	r.Log.LogDebug(fmt.Sprintf(format, args...))
}

// Info logs and records an informational message.
func (r *Reporter) Info(code, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.Diags.Add(SeverityInfo, code, msg)
	r.Log.LogInfo(msg)
}

// Warn logs and records a warning.
func (r *Reporter) Warn(code, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.Diags.Add(SeverityWarning, code, msg)
	r.Log.LogWarn(msg)
}

// Fatal logs and records a fatal message and returns the error the caller must propagate.
func (r *Reporter) Fatal(code, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	r.Diags.Add(SeverityFatal, code, msg)
	r.Log.LogFatal(msg)
	return &FatalError{Code: code, Msg: msg}
}
