package config

import (
	"bufio"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/harrison/boostcfg/internal/params"
)

// headline parameters are printed first, in this order.
var headline = []string{"boosting", "objective", "metric", "tree_learner", "device_type"}

// String dumps the configuration, one "[name: value]" line per parameter.
// The headline parameters come first, then the rest sorted by name, then
// the unknown parameters sorted by name.
func (c *Config) String() string {
	var b strings.Builder
	for _, name := range headline {
		f, _ := Lookup(name)
		fmt.Fprintf(&b, "[%s: %s]\n", name, f.format(c))
	}

	skip := make(map[string]bool, len(headline))
	for _, name := range headline {
		skip[name] = true
	}
	rest := make([]Field, 0, len(fields))
	for _, f := range fields {
		if !skip[f.Name] {
			rest = append(rest, f)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].Name < rest[j].Name })

	for _, f := range rest {
		fmt.Fprintf(&b, "[%s: %s]\n", f.Name, f.format(c))
	}

	// Unknown parameters follow the declared ones so a rebuild keeps them.
	unknown := make([]string, 0, len(c.Unknown))
	for name := range c.Unknown {
		unknown = append(unknown, name)
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(&b, "[%s: %s]\n", name, c.Unknown[name])
	}
	return b.String()
}

// format renders the bound value the way the dump prints it.
func (f Field) format(c *Config) string {
	switch v := f.bind(c).(type) {
	case *int:
		return strconv.Itoa(*v)
	case *float64:
		return formatFloat(*v)
	case *bool:
		return strconv.FormatBool(*v)
	case *string:
		return *v
	case *TaskType:
		return string(*v)
	case *[]string:
		return strings.Join(*v, ",")
	case *[]int:
		parts := make([]string, len(*v))
		for i, n := range *v {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, ",")
	case *[]float64:
		parts := make([]string, len(*v))
		for i, x := range *v {
			parts[i] = formatFloat(x)
		}
		return strings.Join(parts, ",")
	}
	return ""
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseDump reads the output of (*Config).String back into raw parameters.
// Blank lines are skipped; any other line must look like "[name: value]".
func ParseDump(text string) (*params.RawSet, error) {
	raw := params.NewRawSet()
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
			return nil, fmt.Errorf("line %d: expected [name: value], got %q", lineNum, line)
		}
		body := line[1 : len(line)-1]
		sep := strings.Index(body, ":")
		if sep <= 0 {
			return nil, fmt.Errorf("line %d: missing parameter name in %q", lineNum, line)
		}
		name := strings.TrimSpace(body[:sep])
		value := strings.TrimSpace(body[sep+1:])

		// A dump always holds the resolved metric list, so an empty one was
		// explicitly empty and must not fall back to the objective.
		if name == "metric" && value == "" {
			value = ","
		}
		raw.Add(name, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dump: %w", err)
	}
	return raw, nil
}
