package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/boostcfg/internal/config"
	"github.com/harrison/boostcfg/internal/output"
)

// NewParamsCommand creates the params command
func NewParamsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Print the Markdown parameter reference",
		Long: `Print a Markdown reference of every parameter, grouped by section, with
its type, default, constraints, aliases and description.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outPath, _ := cmd.Flags().GetString("out")

			var buf bytes.Buffer
			if err := config.WriteReference(&buf); err != nil {
				return fmt.Errorf("failed to render parameter reference: %w", err)
			}
			return output.Emit(cmd.Context(), outPath, cmd.OutOrStdout(), buf.Bytes())
		},
	}

	cmd.Flags().StringP("out", "o", "", "Write to this file instead of stdout")

	return cmd
}
