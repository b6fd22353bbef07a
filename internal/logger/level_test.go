package logger

import (
	"bytes"
	"strings"
	"testing"
)

// TestLogLevelFiltering verifies that messages are filtered based on log level
func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		messageLevel Level
		message      string
		shouldAppear bool
	}{
		{name: "debug sees debug", logLevel: "debug", messageLevel: LevelDebug, message: "debug msg", shouldAppear: true},
		{name: "debug sees info", logLevel: "debug", messageLevel: LevelInfo, message: "info msg", shouldAppear: true},
		{name: "debug sees warn", logLevel: "debug", messageLevel: LevelWarn, message: "warn msg", shouldAppear: true},
		{name: "debug sees fatal", logLevel: "debug", messageLevel: LevelFatal, message: "fatal msg", shouldAppear: true},

		{name: "info blocks debug", logLevel: "info", messageLevel: LevelDebug, message: "debug msg", shouldAppear: false},
		{name: "info sees info", logLevel: "info", messageLevel: LevelInfo, message: "info msg", shouldAppear: true},
		{name: "info sees warn", logLevel: "info", messageLevel: LevelWarn, message: "warn msg", shouldAppear: true},

		{name: "warn blocks info", logLevel: "warn", messageLevel: LevelInfo, message: "info msg", shouldAppear: false},
		{name: "warn sees warn", logLevel: "warn", messageLevel: LevelWarn, message: "warn msg", shouldAppear: true},
		{name: "warn sees fatal", logLevel: "warn", messageLevel: LevelFatal, message: "fatal msg", shouldAppear: true},

		{name: "fatal blocks warn", logLevel: "fatal", messageLevel: LevelWarn, message: "warn msg", shouldAppear: false},
		{name: "fatal sees fatal", logLevel: "fatal", messageLevel: LevelFatal, message: "fatal msg", shouldAppear: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, tt.logLevel)

			switch tt.messageLevel {
			case LevelDebug:
				logger.LogDebug(tt.message)
			case LevelInfo:
				logger.LogInfo(tt.message)
			case LevelWarn:
				logger.LogWarn(tt.message)
			case LevelFatal:
				logger.LogFatal(tt.message)
			}

			contains := strings.Contains(buf.String(), tt.message)
			if tt.shouldAppear && !contains {
				t.Errorf("Expected message %q to appear in output, got %q", tt.message, buf.String())
			}
			if !tt.shouldAppear && contains {
				t.Errorf("Expected message %q NOT to appear in output, got %q", tt.message, buf.String())
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"TRACE", LevelDebug},
		{"info", LevelInfo},
		{" Warn ", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelFatal},
		{"fatal", LevelFatal},
		{"", LevelInfo},
		{"loud", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidLevel(t *testing.T) {
	for _, name := range []string{"debug", "info", "warn", "fatal", "ERROR"} {
		if !ValidLevel(name) {
			t.Errorf("ValidLevel(%q) = false, want true", name)
		}
	}
	if ValidLevel("chatty") {
		t.Error("ValidLevel(\"chatty\") = true, want false")
	}
}

// TestSetLevelChangesThreshold verifies the threshold can be lowered after construction
func TestSetLevelChangesThreshold(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	logger.LogDebug("hidden")
	logger.SetLevel(LevelDebug)
	logger.LogDebug("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug message logged before SetLevel(LevelDebug)")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("debug message missing after SetLevel(LevelDebug)")
	}
	if logger.Level() != LevelDebug {
		t.Errorf("Level() = %v, want debug", logger.Level())
	}
}
