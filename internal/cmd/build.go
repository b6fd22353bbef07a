package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/harrison/boostcfg/internal/config"
	"github.com/harrison/boostcfg/internal/diagnostic"
	"github.com/harrison/boostcfg/internal/history"
	"github.com/harrison/boostcfg/internal/loader"
	"github.com/harrison/boostcfg/internal/output"
	"github.com/harrison/boostcfg/internal/params"
)

// resolution is the outcome of running the parameter pipeline once.
type resolution struct {
	Config     *config.Config
	Context    *config.BuildContext
	ConfigFile string
	Args       []string
}

// Diagnostics returns everything reported during the build.
func (r *resolution) Diagnostics() *diagnostic.Diagnostics {
	return &r.Context.Diags
}

// resolveParameters collects the parameters from args, the dump file and the
// parameter file (in that precedence order) and builds the configuration.
// A fatal build returns the resolution together with the *config.FatalError.
func resolveParameters(e *env, args []string, configFile, dumpFile string) (*resolution, error) {
	bc := config.NewBuildContext(e.log)
	res := &resolution{Context: bc, Args: args}

	raw := params.NewRawSet()
	for _, arg := range args {
		raw.AddToken(arg, bc.Reporter)
	}

	if dumpFile != "" {
		data, err := os.ReadFile(dumpFile)
		if err != nil {
			return res, fmt.Errorf("failed to read dump file: %w", err)
		}
		dumped, err := config.ParseDump(string(data))
		if err != nil {
			return res, fmt.Errorf("failed to parse dump file %s: %w", dumpFile, err)
		}
		if e.logLevelSet {
			dumped = withoutVerbosity(dumped)
		}
		raw.Merge(dumped)
	}

	if configFile == "" {
		configFile, _ = loader.ConfigPath(raw)
	}
	if configFile != "" {
		res.ConfigFile = configFile
		if err := loader.Load(configFile, raw, bc.Reporter); err != nil {
			return res, err
		}
	}

	c, err := config.FromRawSet(raw, bc)
	if err != nil {
		return res, err
	}
	res.Config = c
	return res, nil
}

// withoutVerbosity drops the verbosity keys, which every dump carries, so an
// explicit --log-level is not overridden by a previous run's threshold.
func withoutVerbosity(raw *params.RawSet) *params.RawSet {
	out := params.NewRawSet()
	for _, key := range raw.Keys() {
		if key == "verbosity" || key == "verbose" {
			continue
		}
		values, _ := raw.Values(key)
		for _, v := range values {
			out.Add(key, v)
		}
	}
	return out
}

// NewBuildCommand creates the build command
func NewBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [key=value ...]",
		Short: "Resolve parameters and print the configuration dump",
		Long: `Resolve training parameters into a configuration and print its dump,
one "[name: value]" line per parameter.

Parameters given on the command line take precedence over the parameter
file named by --config (or by a config=<file> parameter), which in turn
is read after a dump given with --from-dump.

Examples:
  # Build from the command line
  boostcfg build objective=binary num_leaves=63

  # Build from a parameter file, overriding one value
  boostcfg build --config train.yaml learning_rate=0.05

  # Write the dump to a file and record the build
  boostcfg build --config train.conf --out model.params --record

  # Rebuild a previous dump with a change
  boostcfg build --from-dump model.params num_iterations=500`,
		RunE: runBuild,
	}

	cmd.Flags().String("config", "", "Parameter file (.conf, .txt, .yaml, .yml, .toml, .md)")
	cmd.Flags().String("from-dump", "", "Read parameters from a previous configuration dump")
	cmd.Flags().StringP("out", "o", "", "Write the dump to this file instead of stdout")
	cmd.Flags().Bool("record", false, "Record the build in the history database")
	cmd.Flags().Bool("debug-struct", false, "Also print the resolved configuration struct")

	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	configFile, _ := cmd.Flags().GetString("config")
	dumpFile, _ := cmd.Flags().GetString("from-dump")
	outPath, _ := cmd.Flags().GetString("out")
	record, _ := cmd.Flags().GetBool("record")
	debugStruct, _ := cmd.Flags().GetBool("debug-struct")

	res, buildErr := resolveParameters(e, args, configFile, dumpFile)

	if record || e.settings.History.Enabled {
		// Only pipeline outcomes are recorded, not I/O failures.
		if buildErr == nil || errors.Is(buildErr, config.ErrFatal) {
			if err := recordBuild(cmd, e, res, buildErr); err != nil {
				e.log.LogWarn(fmt.Sprintf("Failed to record build: %v", err))
			}
		}
	}
	if buildErr != nil {
		return buildErr
	}

	dump := res.Config.String()
	if err := output.Emit(cmd.Context(), outPath, cmd.OutOrStdout(), []byte(dump)); err != nil {
		return fmt.Errorf("failed to write dump: %w", err)
	}
	if outPath != "" && outPath != output.Stdout {
		e.log.LogInfo(fmt.Sprintf("Configuration written to %s", outPath))
	}

	if debugStruct {
		fmt.Fprint(cmd.OutOrStdout(), spew.Sdump(res.Config))
	}
	return nil
}

func recordBuild(cmd *cobra.Command, e *env, res *resolution, buildErr error) error {
	store, err := e.openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	b := &history.Build{
		Args:       strings.Join(res.Args, " "),
		ConfigFile: res.ConfigFile,
		Status:     history.StatusOK,
		Warnings:   len(res.Diagnostics().Warnings()),
	}
	if buildErr != nil {
		b.Status = history.StatusFatal
		b.ErrorMessage = buildErr.Error()
	} else {
		b.Dump = res.Config.String()
		b.Objective = res.Config.Objective
		b.Boosting = res.Config.Boosting
	}

	ctx := cmd.Context()
	if err := store.Record(ctx, b); err != nil {
		return err
	}
	if _, err := store.Prune(ctx, e.settings.History.KeepBuilds); err != nil {
		return err
	}
	e.log.LogDebug(fmt.Sprintf("Recorded build %s in %s", b.ShortID(), store.Path()))
	return nil
}
