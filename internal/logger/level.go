package logger

import "strings"

// Level is a logging threshold. Messages below the configured level are dropped.
type Level int

// Log levels in increasing order of severity.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelFatal
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelFatal:
		return "fatal"
	default:
		return "info"
	}
}

// label is the bracketed tag written in front of each message.
func (l Level) label() string {
	return strings.ToUpper(l.String())
}

// ParseLevel converts a level name to a Level (case-insensitive).
// "warning" and "error" are accepted as spellings of warn and fatal.
// Empty or unknown names fall back to LevelInfo.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace", "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "fatal", "error":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// ValidLevel reports whether name is a level ParseLevel understands.
func ValidLevel(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace", "debug", "info", "warn", "warning", "fatal", "error":
		return true
	}
	return false
}

// Logger is the leveled sink used by the parameter pipeline.
// Implementations must be safe for concurrent use.
type Logger interface {
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogFatal(message string)
	SetLevel(level Level)
	Level() Level
}
