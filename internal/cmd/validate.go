package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/boostcfg/internal/config"
	"github.com/harrison/boostcfg/internal/display"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [key=value ...]",
		Short: "Check parameters without printing the configuration",
		Long: `Run the full parameter pipeline and report what it found.

Every warning and the fatal message, if any, are printed with the stage
or rule that produced them. The command exits non-zero when the
parameters cannot be built into a configuration.

Examples:
  boostcfg validate objective=multiclass num_class=1
  boostcfg validate --config train.toml`,
		RunE: runValidate,
	}

	cmd.Flags().String("config", "", "Parameter file (.conf, .txt, .yaml, .yml, .toml, .md)")
	cmd.Flags().String("from-dump", "", "Read parameters from a previous configuration dump")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	configFile, _ := cmd.Flags().GetString("config")
	dumpFile, _ := cmd.Flags().GetString("from-dump")

	res, buildErr := resolveParameters(e, args, configFile, dumpFile)
	if buildErr != nil && !errors.Is(buildErr, config.ErrFatal) {
		return buildErr
	}

	out := cmd.OutOrStdout()
	p := display.NewPrinter(out, display.ColorEnabled(out, e.settings.Color))
	diags := res.Diagnostics()
	p.Diagnostics(diags)

	warnings := len(diags.Warnings())
	if buildErr != nil {
		p.Failure("Parameters are invalid (%d %s)", warnings, plural(warnings, "warning", "warnings"))
		return fmt.Errorf("validation failed: %w", buildErr)
	}

	unknown := len(res.Config.Unknown)
	p.Success("Parameters are valid (%d %s, %d unknown %s)",
		warnings, plural(warnings, "warning", "warnings"), unknown, plural(unknown, "parameter", "parameters"))
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
