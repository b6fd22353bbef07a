// Package logger provides the leveled logging sinks used while building
// configurations.
//
// Every sink filters by a Level threshold that the verbosity parameter can
// change at run time. Implementations are thread-safe and write one line per
// message, prefixed with an [HH:MM:SS] timestamp and the level tag.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ConsoleLogger writes leveled messages to a writer with timestamps.
// Color output is enabled automatically when the writer is a terminal.
type ConsoleLogger struct {
	writer      io.Writer
	level       Level
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Empty or invalid level names default to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		level:       ParseLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal reports whether w is a TTY that should receive ANSI colors.
// NO_COLOR (honored by fatih/color) always wins.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetColor overrides terminal detection.
func (cl *ConsoleLogger) SetColor(enabled bool) {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	cl.colorOutput = enabled
}

// SetLevel changes the threshold for subsequent messages.
func (cl *ConsoleLogger) SetLevel(level Level) {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	cl.level = level
}

// Level returns the current threshold.
func (cl *ConsoleLogger) Level() Level {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	return cl.level
}

// LogDebug logs a debug-level message.
// Format: "[HH:MM:SS] [DEBUG] <message>"
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel(LevelDebug, message)
}

// LogInfo logs an info-level message.
// Format: "[HH:MM:SS] [INFO] <message>"
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel(LevelInfo, message)
}

// LogWarn logs a warning-level message.
// Format: "[HH:MM:SS] [WARN] <message>"
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel(LevelWarn, message)
}

// LogFatal logs a fatal-level message. It does not exit; callers return an error.
// Format: "[HH:MM:SS] [FATAL] <message>"
func (cl *ConsoleLogger) LogFatal(message string) {
	cl.logWithLevel(LevelFatal, message)
}

func (cl *ConsoleLogger) logWithLevel(level Level, message string) {
	if cl.writer == nil {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	if level < cl.level {
		return
	}

	ts := timestamp()
	var formatted string
	if cl.colorOutput {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, colorize(level), message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level.label(), message)
	}

	cl.writer.Write([]byte(formatted))
}

// colorize renders the level tag with its ANSI color.
func colorize(level Level) string {
	switch level {
	case LevelDebug:
		return color.New(color.FgCyan).Sprint(level.label())
	case LevelInfo:
		return color.New(color.FgBlue).Sprint(level.label())
	case LevelWarn:
		return color.New(color.FgYellow).Sprint(level.label())
	case LevelFatal:
		return color.New(color.FgRed, color.Bold).Sprint(level.label())
	default:
		return level.label()
	}
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// NoOpLogger discards all messages but still tracks its level,
// so verbosity changes stay observable in tests.
type NoOpLogger struct {
	mu    sync.Mutex
	level Level
}

// NewNoOpLogger creates a NoOpLogger at info level.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{level: LevelInfo}
}

func (n *NoOpLogger) LogDebug(message string) {}
func (n *NoOpLogger) LogInfo(message string)  {}
func (n *NoOpLogger) LogWarn(message string)  {}
func (n *NoOpLogger) LogFatal(message string) {}

// SetLevel records the threshold.
func (n *NoOpLogger) SetLevel(level Level) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.level = level
}

// Level returns the recorded threshold.
func (n *NoOpLogger) Level() Level {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.level
}
