package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

// NewHistoryCommand creates the 'boostcfg history' parent command
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded builds",
		Long: `Commands for viewing and managing the build history.

Builds are recorded with 'boostcfg build --record', or always when
history.enabled is set in the settings file.`,
	}

	cmd.AddCommand(newHistoryListCommand())
	cmd.AddCommand(newHistoryShowCommand())
	cmd.AddCommand(newHistoryClearCommand())

	return cmd
}

func newHistoryListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded builds, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			return runHistoryList(cmd, limit)
		},
	}
	cmd.Flags().IntP("limit", "n", 20, "Maximum number of builds to show (0 = all)")
	return cmd
}

func runHistoryList(cmd *cobra.Command, limit int) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	out := cmd.OutOrStdout()
	if !historyExists(out, e.historyPath()) {
		return nil
	}

	store, err := e.openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	builds, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(builds) == 0 {
		fmt.Fprintln(out, "No builds recorded.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSTATUS\tWARNINGS\tOBJECTIVE\tSOURCE")
	for _, b := range builds {
		source := b.ConfigFile
		if source == "" {
			source = b.Args
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			b.ShortID(), b.CreatedAt.Format(time.DateTime), b.Status, b.Warnings, b.Objective, truncate(source, 48))
	}
	return w.Flush()
}

func newHistoryShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <build-id>",
		Short: "Show one recorded build and its dump",
		Long: `Show a recorded build. The ID may be abbreviated to any unique prefix,
such as the eight characters printed by 'boostcfg history list'.`,
		Args: cobra.ExactArgs(1),
		RunE: runHistoryShow,
	}
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	out := cmd.OutOrStdout()
	if !historyExists(out, e.historyPath()) {
		return nil
	}

	store, err := e.openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	b, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Build:       %s\n", b.ID)
	fmt.Fprintf(out, "Time:        %s\n", b.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(out, "Status:      %s\n", b.Status)
	fmt.Fprintf(out, "Warnings:    %d\n", b.Warnings)
	if b.ConfigFile != "" {
		fmt.Fprintf(out, "Config file: %s\n", b.ConfigFile)
	}
	if b.Args != "" {
		fmt.Fprintf(out, "Arguments:   %s\n", b.Args)
	}
	if b.ErrorMessage != "" {
		fmt.Fprintf(out, "Error:       %s\n", b.ErrorMessage)
	}
	if b.Dump != "" {
		fmt.Fprintf(out, "\n%s", b.Dump)
	}
	return nil
}

func newHistoryClearCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded build",
		Long: `Delete every recorded build from the history database.

Examples:
  # Asks for confirmation
  boostcfg history clear

  # No prompt
  boostcfg history clear --yes`,
		Args: cobra.NoArgs,
		RunE: runHistoryClear,
	}
	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	out := cmd.OutOrStdout()
	if !historyExists(out, e.historyPath()) {
		return nil
	}

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		fmt.Fprintf(out, "WARNING: This will delete ALL recorded builds from %s.\n", e.historyPath())
		if !confirmAction(cmd.InOrStdin(), out) {
			fmt.Fprintln(out, "Operation cancelled.")
			return nil
		}
	}

	store, err := e.openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	deleted, err := store.Clear(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted %d %s.\n", deleted, plural(int(deleted), "build", "builds"))
	return nil
}

// historyExists reports whether the database file exists, telling the user
// when it does not.
func historyExists(out io.Writer, path string) bool {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(out, "No history database found at: %s\n", path)
		return false
	}
	return true
}

// confirmAction prompts for a y/N answer on in.
func confirmAction(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "Continue? [y/N]: ")

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}
	response := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return response == "y" || response == "yes"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
