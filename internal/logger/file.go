package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileLogger appends build messages to a timestamped file in a log directory
// and keeps a latest.log symlink pointing at the newest one.
type FileLogger struct {
	logDir  string
	file    *os.File
	runFile string
	level   Level
	mu      sync.Mutex
}

// NewFileLogger creates the log directory if needed, opens
// build-YYYYMMDD-HHMMSS.log inside it and repoints latest.log.
func NewFileLogger(logDir string, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	stamp := time.Now().Format("20060102-150405")
	runFile := filepath.Join(logDir, fmt.Sprintf("build-%s.log", stamp))

	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create build log file: %w", err)
	}

	symlinkPath := filepath.Join(logDir, "latest.log")
	if _, err := os.Lstat(symlinkPath); err == nil {
		if err := os.Remove(symlinkPath); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}
	if err := os.Symlink(filepath.Base(runFile), symlinkPath); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create symlink: %w", err)
	}

	fl := &FileLogger{
		logDir:  logDir,
		file:    file,
		runFile: runFile,
		level:   ParseLevel(logLevel),
	}
	fl.write(fmt.Sprintf("=== boostcfg build log ===\nStarted at: %s\n\n", time.Now().Format(time.RFC3339)))
	return fl, nil
}

// Path returns the file this logger writes to.
func (fl *FileLogger) Path() string {
	return fl.runFile
}

func (fl *FileLogger) SetLevel(level Level) {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	fl.level = level
}

func (fl *FileLogger) Level() Level {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	return fl.level
}

func (fl *FileLogger) LogDebug(message string) { fl.logWithLevel(LevelDebug, message) }
func (fl *FileLogger) LogInfo(message string)  { fl.logWithLevel(LevelInfo, message) }
func (fl *FileLogger) LogWarn(message string)  { fl.logWithLevel(LevelWarn, message) }
func (fl *FileLogger) LogFatal(message string) { fl.logWithLevel(LevelFatal, message) }

func (fl *FileLogger) logWithLevel(level Level, message string) {
	if level < fl.Level() {
		return
	}
	fl.write(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level.label(), message))
}

func (fl *FileLogger) write(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	if fl.file == nil {
		return
	}
	fl.file.WriteString(message)
}

// Close flushes and closes the underlying file. Safe to call twice.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	if fl.file == nil {
		return nil
	}
	if err := fl.file.Sync(); err != nil {
		fl.file.Close()
		fl.file = nil
		return fmt.Errorf("failed to sync build log: %w", err)
	}
	err := fl.file.Close()
	fl.file = nil
	return err
}

// MultiLogger fans each message out to several sinks.
// Each sink still applies its own threshold; SetLevel updates all of them.
type MultiLogger struct {
	sinks []Logger
}

// NewMultiLogger combines sinks. Nil sinks are skipped.
func NewMultiLogger(sinks ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

func (m *MultiLogger) LogDebug(message string) {
	for _, s := range m.sinks {
		s.LogDebug(message)
	}
}

func (m *MultiLogger) LogInfo(message string) {
	for _, s := range m.sinks {
		s.LogInfo(message)
	}
}

func (m *MultiLogger) LogWarn(message string) {
	for _, s := range m.sinks {
		s.LogWarn(message)
	}
}

func (m *MultiLogger) LogFatal(message string) {
	for _, s := range m.sinks {
		s.LogFatal(message)
	}
}

func (m *MultiLogger) SetLevel(level Level) {
	for _, s := range m.sinks {
		s.SetLevel(level)
	}
}

// Level reports the threshold of the first sink, or info when empty.
func (m *MultiLogger) Level() Level {
	if len(m.sinks) == 0 {
		return LevelInfo
	}
	return m.sinks[0].Level()
}
