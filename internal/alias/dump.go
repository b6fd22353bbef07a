package alias

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// sortedAliases returns the catalog with every alias list ordered by Less.
func sortedAliases() []Parameter {
	params := Parameters()
	for i := range params {
		sort.SliceStable(params[i].Aliases, func(a, b int) bool {
			return Less(params[i].Aliases[a], params[i].Aliases[b])
		})
	}
	return params
}

// Dump renders the alias table as a JSON-like block, one parameter per line:
//
//	{
//	   "config": ["config_file"]
//	   , "task": ["task_type"]
//	}
func Dump() string {
	var b strings.Builder
	b.WriteString("{\n")
	for i, param := range sortedAliases() {
		if i == 0 {
			b.WriteString("   \"")
		} else {
			b.WriteString("   , \"")
		}
		b.WriteString(param.Name)
		b.WriteString("\": [")
		if len(param.Aliases) > 0 {
			b.WriteString("\"" + strings.Join(param.Aliases, "\", \"") + "\"")
		}
		b.WriteString("]\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// DumpYAML renders the same table as a YAML mapping with flow-style alias lists.
func DumpYAML() (string, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, param := range sortedAliases() {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, a := range param.Aliases {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: a})
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: param.Name},
			seq,
		)
	}
	out, err := yaml.Marshal(root)
	if err != nil {
		return "", fmt.Errorf("failed to marshal alias table: %w", err)
	}
	return string(out), nil
}
