package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/boostcfg/internal/alias"
	"github.com/harrison/boostcfg/internal/output"
)

// NewAliasesCommand creates the aliases command
func NewAliasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aliases",
		Short: "Print every parameter with its accepted aliases",
		Long: `Print the alias table: every canonical parameter name followed by the
alternative names it accepts, sorted by alias count and then by name.

The text format is the one bindings consume; yaml is easier to read.`,
		Args: cobra.NoArgs,
		RunE: runAliases,
	}

	cmd.Flags().String("format", "text", "Output format: text or yaml")
	cmd.Flags().StringP("out", "o", "", "Write to this file instead of stdout")

	return cmd
}

func runAliases(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	var text string
	switch format {
	case "text":
		text = alias.Dump()
	case "yaml":
		var err error
		text, err = alias.DumpYAML()
		if err != nil {
			return fmt.Errorf("failed to render aliases: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q (supported: text, yaml)", format)
	}

	return output.Emit(cmd.Context(), outPath, cmd.OutOrStdout(), []byte(text))
}
