package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrison/boostcfg/internal/history"
	"github.com/harrison/boostcfg/internal/logger"
	"github.com/harrison/boostcfg/internal/settings"
)

// env is what every subcommand needs: resolved settings and the logger.
type env struct {
	settings *settings.Settings
	home     string
	log      logger.Logger
	// logLevelSet is true when --log-level was given explicitly.
	logLevelSet bool
	closers     []func() error
}

// newEnv loads settings, applies the persistent flags and opens the loggers.
func newEnv(cmd *cobra.Command) (*env, error) {
	e := &env{}

	settingsPath, _ := cmd.Flags().GetString("settings")
	if settingsPath == "" {
		home, err := settings.Home()
		if err != nil {
			return nil, err
		}
		e.home = home
		settingsPath = filepath.Join(home, "settings.yaml")
	} else {
		e.home = filepath.Dir(settingsPath)
	}

	s, err := settings.Load(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings from %s: %w", settingsPath, err)
	}

	var logLevel, logDir, historyDB *string
	var color *bool
	if changed(cmd, "log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevel = &v
		e.logLevelSet = true
	}
	if changed(cmd, "log-dir") {
		v, _ := cmd.Flags().GetString("log-dir")
		logDir = &v
	}
	if changed(cmd, "no-color") {
		v, _ := cmd.Flags().GetBool("no-color")
		enabled := !v
		color = &enabled
	}
	if changed(cmd, "history-db") {
		v, _ := cmd.Flags().GetString("history-db")
		historyDB = &v
	}
	s.MergeWithFlags(logLevel, logDir, color, historyDB)

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	e.settings = s

	console := logger.NewConsoleLogger(cmd.ErrOrStderr(), s.LogLevel)
	if !s.Color {
		console.SetColor(false)
	}
	e.log = console

	if s.LogDir != "" {
		fileLog, err := logger.NewFileLogger(s.LogDir, s.LogLevel)
		if err != nil {
			return nil, err
		}
		e.closers = append(e.closers, fileLog.Close)
		e.log = logger.NewMultiLogger(console, fileLog)
	}

	return e, nil
}

func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}

// close releases the file logger, if any.
func (e *env) close() {
	for _, c := range e.closers {
		c()
	}
}

// historyPath returns the resolved history database path.
func (e *env) historyPath() string {
	return settings.HistoryDBPath(e.home, e.settings.History.DBPath)
}

func (e *env) openHistory() (*history.Store, error) {
	store, err := history.NewStore(e.historyPath())
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}
	return store, nil
}
