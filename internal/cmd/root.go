package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for boostcfg
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boostcfg",
		Short: "Resolve gradient boosting training parameters into a checked configuration",
		Long: `boostcfg turns free-form key=value training parameters into a complete,
validated gradient boosting configuration.

Parameters come from the command line and from a parameter file
(.conf, .yaml, .toml or Markdown with fenced params blocks). Aliases are
resolved to canonical names, values are type checked, and dependent
parameters are derived or reconciled before the configuration is printed.

Tool preferences are loaded from .boostcfg/settings.yaml if present.
CLI flags override settings file values.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("settings", "", "Path to settings file (default: <home>/settings.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Console log level: debug, info, warn, fatal")
	cmd.PersistentFlags().String("log-dir", "", "Also write logs to a timestamped file in this directory")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	cmd.PersistentFlags().String("history-db", "", "Path to the build history database")

	cmd.AddCommand(NewBuildCommand())
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewAliasesCommand())
	cmd.AddCommand(NewParamsCommand())
	cmd.AddCommand(NewHistoryCommand())

	return cmd
}
