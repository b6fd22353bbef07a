package config

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/harrison/boostcfg/internal/alias"
)

// WriteReference renders a Markdown reference of every parameter, one table
// per section, in catalog order.
func WriteReference(w io.Writer) error {
	var b strings.Builder
	b.WriteString("# Parameters\n")

	var section alias.Section
	for _, param := range alias.Parameters() {
		if param.Section != section {
			section = param.Section
			fmt.Fprintf(&b, "\n## %s\n\n", section)
			b.WriteString("| Name | Type | Default | Constraints | Aliases | Description |\n")
			b.WriteString("|------|------|---------|-------------|---------|-------------|\n")
		}

		f, ok := Lookup(param.Name)
		if !ok {
			return fmt.Errorf("parameter %s has no descriptor", param.Name)
		}

		aliases := append([]string(nil), param.Aliases...)
		sort.SliceStable(aliases, func(i, j int) bool { return alias.Less(aliases[i], aliases[j]) })

		fmt.Fprintf(&b, "| `%s` | %s | %s | %s | %s | %s |\n",
			param.Name,
			f.Kind,
			code(f.Default),
			escapeCell(f.Bounds()),
			codeList(aliases),
			escapeCell(param.Description),
		)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write parameter reference: %w", err)
	}
	return nil
}

func code(s string) string {
	if s == "" {
		return ""
	}
	return "`" + s + "`"
}

func codeList(items []string) string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = code(item)
	}
	return strings.Join(out, ", ")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
