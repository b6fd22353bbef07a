package display

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/harrison/boostcfg/internal/diagnostic"
)

func sampleDiagnostics() *diagnostic.Diagnostics {
	var d diagnostic.Diagnostics
	d.Add(diagnostic.SeverityInfo, "fields", "auc_mu_weights set")
	d.Add(diagnostic.SeverityWarning, "alias", "Unknown parameter: foo")
	d.Add(diagnostic.SeverityFatal, "fields", "Parameter num_leaves should be > 1 && <= 131072, got 1")
	return &d
}

func TestPrinterDiagnosticsPlain(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).Diagnostics(sampleDiagnostics())

	want := "⚠ [alias] Unknown parameter: foo\n" +
		"✗ [fields] Parameter num_leaves should be > 1 && <= 131072, got 1\n"
	if buf.String() != want {
		t.Errorf("Unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrinterDiagnosticsColored(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, true).Diagnostics(sampleDiagnostics())

	output := buf.String()
	if !strings.Contains(output, "\x1b[33m") {
		t.Error("Expected yellow ANSI color code for the warning")
	}
	if !strings.Contains(output, "\x1b[31;1m") {
		t.Error("Expected bold red ANSI color code for the fatal message")
	}
	if !strings.Contains(output, "\x1b[0m") {
		t.Error("Expected ANSI reset code in output")
	}
}

func TestPrinterStatusLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.Success("Parameters are valid (%d warnings)", 0)
	p.Failure("Parameters are invalid")

	want := "✓ Parameters are valid (0 warnings)\n✗ Parameters are invalid\n"
	if buf.String() != want {
		t.Errorf("Unexpected output %q, want %q", buf.String(), want)
	}
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	if ColorEnabled(&buf, true) {
		t.Error("A buffer is never a terminal")
	}

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer f.Close()
	if ColorEnabled(f, true) {
		t.Error("A regular file is never a terminal")
	}
	if ColorEnabled(os.Stdout, false) {
		t.Error("Color must stay off when not preferred")
	}
}
